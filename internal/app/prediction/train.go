package prediction

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

// archetype describes one disease's characteristic symptom profile used to
// generate synthetic training data: primary symptoms appear in most
// samples, secondary ones occasionally.
type archetype struct {
	disease   string
	primary   []string
	secondary []string
	severity  string
	samples   int
}

var archetypes = []archetype{
	{"common_cold", []string{"runny_nose", "sneezing", "sore_throat", "cough", "congestion"},
		[]string{"fatigue", "headache", "muscle_pain"}, SeverityMild, 300},
	{"flu", []string{"fever", "cough", "fatigue", "muscle_pain", "headache"},
		[]string{"chills", "sore_throat", "sweating"}, SeverityModerate, 300},
	{"covid19", []string{"fever", "cough", "fatigue", "loss_of_appetite", "shortness_of_breath"},
		[]string{"headache", "muscle_pain", "sore_throat"}, SeverityModerate, 300},
	{"pneumonia", []string{"fever", "cough", "chest_pain", "shortness_of_breath", "fatigue"},
		[]string{"sweating", "chills", "nausea"}, SeveritySevere, 120},
	{"bronchitis", []string{"cough", "fatigue", "chest_pain", "shortness_of_breath"},
		[]string{"fever", "sore_throat", "headache"}, SeverityModerate, 100},
	{"asthma", []string{"shortness_of_breath", "cough", "chest_pain", "wheezing"},
		[]string{"fatigue", "difficulty_swallowing"}, SeverityModerate, 100},
	{"allergic_rhinitis", []string{"runny_nose", "sneezing", "itching", "congestion"},
		[]string{"headache", "fatigue", "sore_throat"}, SeverityMild, 120},
	{"gastroenteritis", []string{"nausea", "vomiting", "diarrhea", "abdominal_pain"},
		[]string{"fever", "fatigue", "loss_of_appetite"}, SeverityModerate, 130},
	{"migraine", []string{"headache", "nausea", "sensitivity_to_light", "dizziness"},
		[]string{"vomiting", "fatigue", "blurred_vision"}, SeverityModerate, 110},
	{"hypertension", []string{"headache", "dizziness", "chest_pain", "shortness_of_breath"},
		[]string{"fatigue", "irregular_heartbeat", "blurred_vision"}, SeverityModerate, 100},
	{"diabetes", []string{"fatigue", "weight_loss", "loss_of_appetite", "dizziness"},
		[]string{"blurred_vision", "numbness", "weakness"}, SeveritySevere, 100},
	{"urinary_tract_infection", []string{"abdominal_pain", "fever", "nausea", "back_pain"},
		[]string{"fatigue", "chills", "vomiting"}, SeverityModerate, 90},
	{"sinusitis", []string{"headache", "congestion", "runny_nose", "sore_throat"},
		[]string{"fever", "cough", "fatigue"}, SeverityMild, 90},
	{"arthritis", []string{"joint_pain", "muscle_pain", "weakness", "back_pain"},
		[]string{"fatigue", "neck_pain", "numbness"}, SeverityModerate, 80},
	{"anxiety_disorder", []string{"anxiety", "fatigue", "insomnia", "dizziness"},
		[]string{"headache", "muscle_pain", "sweating"}, SeverityModerate, 80},
	{"depression", []string{"depression", "fatigue", "loss_of_appetite", "insomnia"},
		[]string{"anxiety", "weakness", "memory_loss"}, SeverityModerate, 80},
	{"skin_infection", []string{"skin_rash", "itching", "fever"},
		[]string{"fatigue", "muscle_pain"}, SeverityMild, 70},
	{"tuberculosis", []string{"cough", "fever", "weight_loss", "fatigue", "sweating"},
		[]string{"chest_pain", "loss_of_appetite", "chills"}, SeveritySevere, 60},
}

// durations drawn per archetype severity: mild illness is reported in
// hours/days, severe illness in weeks/months.
var durationsBySeverity = map[string][]string{
	SeverityMild:     {DurationHours, DurationDays, DurationDays},
	SeverityModerate: {DurationDays, DurationDays, DurationWeeks},
	SeveritySevere:   {DurationDays, DurationWeeks, DurationMonths},
}

// TrainingSample is one synthetic patient presentation.
type TrainingSample struct {
	Disease  string
	Symptoms []string
	Severity string
	Duration string
}

// GenerateSamples draws a deterministic synthetic dataset from the disease
// archetypes: each sample takes 2..len(primary) primary symptoms and 0..2
// secondary ones.
func GenerateSamples(seed int64) []TrainingSample {
	rng := rand.New(rand.NewSource(seed))
	var samples []TrainingSample
	for _, a := range archetypes {
		for i := 0; i < a.samples; i++ {
			nPrimary := 2 + rng.Intn(len(a.primary)-1)
			nSecondary := rng.Intn(min(3, len(a.secondary)+1))
			symptoms := append(pick(rng, a.primary, nPrimary), pick(rng, a.secondary, nSecondary)...)
			durs := durationsBySeverity[a.severity]
			samples = append(samples, TrainingSample{
				Disease:  a.disease,
				Symptoms: symptoms,
				Severity: a.severity,
				Duration: durs[rng.Intn(len(durs))],
			})
		}
	}
	rng.Shuffle(len(samples), func(i, j int) { samples[i], samples[j] = samples[j], samples[i] })
	return samples
}

// Train fits naive-bayes count tables with Laplace smoothing over the
// samples and packs them into an artifact.
func Train(samples []TrainingSample, seed int64) *Artifact {
	classSet := map[string]bool{}
	symptomSet := map[string]bool{}
	for _, s := range samples {
		classSet[s.Disease] = true
		for _, sym := range s.Symptoms {
			symptomSet[sym] = true
		}
	}
	classes := sortedKeys(classSet)
	symptoms := sortedKeys(symptomSet)

	classIdx := indexOf(classes)
	symptomIdx := indexOf(symptoms)

	classCount := make([]float64, len(classes))
	symCount := newTable(len(classes), len(symptoms))
	sevCount := newTable(len(classes), len(severityIndex))
	durCount := newTable(len(classes), len(durationIndex))

	for _, s := range samples {
		c := classIdx[s.Disease]
		classCount[c]++
		for _, sym := range s.Symptoms {
			symCount[c][symptomIdx[sym]]++
		}
		if vi, ok := severityIndex[s.Severity]; ok {
			sevCount[c][vi]++
		}
		if di, ok := durationIndex[s.Duration]; ok {
			durCount[c][di]++
		}
	}

	art := &Artifact{
		Version:        artifactVersion,
		TrainedAt:      time.Now().UTC(),
		Seed:           seed,
		Samples:        len(samples),
		Classes:        classes,
		Symptoms:       symptoms,
		ClassLogPrior:  make([]float64, len(classes)),
		SymptomLogLik:  newTable(len(classes), len(symptoms)),
		SeverityLogLik: newTable(len(classes), len(severityIndex)),
		DurationLogLik: newTable(len(classes), len(durationIndex)),
	}

	total := float64(len(samples))
	const alpha = 1.0
	for c := range classes {
		art.ClassLogPrior[c] = math.Log((classCount[c] + alpha) / (total + alpha*float64(len(classes))))
		fillLogLik(art.SymptomLogLik[c], symCount[c], alpha)
		fillLogLik(art.SeverityLogLik[c], sevCount[c], alpha)
		fillLogLik(art.DurationLogLik[c], durCount[c], alpha)
	}
	return art
}

func fillLogLik(dst, counts []float64, alpha float64) {
	total := 0.0
	for _, v := range counts {
		total += v
	}
	denom := total + alpha*float64(len(counts))
	for i, v := range counts {
		dst[i] = math.Log((v + alpha) / denom)
	}
}

func pick(rng *rand.Rand, from []string, n int) []string {
	idx := rng.Perm(len(from))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = from[j]
	}
	return out
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func indexOf(items []string) map[string]int {
	idx := make(map[string]int, len(items))
	for i, s := range items {
		idx[s] = i
	}
	return idx
}

func newTable(rows, cols int) [][]float64 {
	t := make([][]float64, rows)
	for i := range t {
		t[i] = make([]float64, cols)
	}
	return t
}
