package prediction

// ruleEntry is one hand-calibrated (disease, weight) pair for a symptom.
type ruleEntry struct {
	disease string
	weight  float64
}

// ruleTable maps canonical symptom keys to weighted disease candidates.
// Every weight stays at or below 0.75.
var ruleTable = map[string][]ruleEntry{
	// respiratory
	"fever":                {{"flu", 0.70}, {"common_cold", 0.55}, {"covid19", 0.60}},
	"cough":                {{"common_cold", 0.65}, {"bronchitis", 0.55}, {"pneumonia", 0.45}},
	"shortness_of_breath":  {{"pneumonia", 0.70}, {"asthma", 0.65}, {"covid19", 0.60}},
	"chest_pain":           {{"pneumonia", 0.65}, {"hypertension", 0.45}},
	"sore_throat":          {{"common_cold", 0.60}, {"sinusitis", 0.45}},
	"runny_nose":           {{"allergic_rhinitis", 0.70}, {"common_cold", 0.50}},
	"sneezing":             {{"allergic_rhinitis", 0.70}, {"common_cold", 0.50}},
	"congestion":           {{"sinusitis", 0.65}, {"common_cold", 0.55}},
	"wheezing":             {{"asthma", 0.75}},
	"difficulty_breathing": {{"asthma", 0.75}, {"pneumonia", 0.65}},

	// general
	"fatigue":          {{"flu", 0.60}, {"covid19", 0.55}, {"diabetes", 0.45}},
	"weakness":         {{"flu", 0.55}, {"diabetes", 0.50}},
	"chills":           {{"flu", 0.65}},
	"sweating":         {{"flu", 0.50}, {"tuberculosis", 0.55}},
	"night_sweats":     {{"tuberculosis", 0.70}},
	"loss_of_appetite": {{"gastroenteritis", 0.55}, {"depression", 0.45}},
	"weight_loss":      {{"diabetes", 0.65}, {"tuberculosis", 0.55}},
	"weight_gain":      {{"hypertension", 0.40}, {"diabetes", 0.35}},
	"dehydration":      {{"gastroenteritis", 0.70}},

	// pain
	"headache":       {{"migraine", 0.70}, {"sinusitis", 0.50}, {"hypertension", 0.45}},
	"muscle_pain":    {{"flu", 0.65}},
	"joint_pain":     {{"arthritis", 0.70}},
	"back_pain":      {{"arthritis", 0.55}, {"urinary_tract_infection", 0.50}},
	"neck_pain":      {{"arthritis", 0.50}},
	"abdominal_pain": {{"gastroenteritis", 0.65}, {"urinary_tract_infection", 0.45}},
	"pelvic_pain":    {{"urinary_tract_infection", 0.60}},
	"ear_pain":       {{"sinusitis", 0.55}},
	"tooth_pain":     {{"sinusitis", 0.40}},

	// digestive
	"nausea":                {{"gastroenteritis", 0.75}, {"migraine", 0.50}},
	"vomiting":              {{"gastroenteritis", 0.75}},
	"diarrhea":              {{"gastroenteritis", 0.75}},
	"constipation":          {{"gastroenteritis", 0.40}},
	"bloating":              {{"gastroenteritis", 0.50}},
	"heartburn":             {{"gastroenteritis", 0.45}},
	"acid_reflux":           {{"gastroenteritis", 0.50}},
	"blood_in_stool":        {{"gastroenteritis", 0.60}},
	"difficulty_swallowing": {{"sinusitis", 0.45}},

	// skin
	"itching":           {{"allergic_rhinitis", 0.75}, {"skin_infection", 0.60}},
	"skin_rash":         {{"skin_infection", 0.75}, {"allergic_rhinitis", 0.55}},
	"hives":             {{"allergic_rhinitis", 0.75}},
	"dry_skin":          {{"skin_infection", 0.40}},
	"pale_skin":         {{"diabetes", 0.35}},
	"yellowing_of_skin": {{"diabetes", 0.50}},
	"bruising":          {{"hypertension", 0.35}},
	"swelling":          {{"allergic_rhinitis", 0.55}},
	"redness":           {{"skin_infection", 0.60}},

	// neurological
	"dizziness":                {{"hypertension", 0.60}, {"migraine", 0.45}},
	"confusion":                {{"hypertension", 0.45}},
	"memory_loss":              {{"depression", 0.40}},
	"numbness":                 {{"diabetes", 0.55}},
	"tingling":                 {{"diabetes", 0.55}},
	"tremors":                  {{"anxiety_disorder", 0.50}},
	"seizures":                 {{"hypertension", 0.40}},
	"loss_of_consciousness":    {{"hypertension", 0.50}},
	"fainting":                 {{"hypertension", 0.55}},
	"difficulty_concentrating": {{"anxiety_disorder", 0.50}, {"depression", 0.45}},
	"slurred_speech":           {{"hypertension", 0.45}},

	// mental health
	"anxiety":       {{"anxiety_disorder", 0.75}},
	"depression":    {{"depression", 0.75}},
	"mood_swings":   {{"depression", 0.60}, {"anxiety_disorder", 0.50}},
	"irritability":  {{"anxiety_disorder", 0.55}},
	"insomnia":      {{"anxiety_disorder", 0.60}, {"depression", 0.55}},
	"restlessness":  {{"anxiety_disorder", 0.65}},
	"panic_attacks": {{"anxiety_disorder", 0.75}},

	// cardiovascular
	"irregular_heartbeat": {{"hypertension", 0.70}},
	"rapid_heartbeat":     {{"anxiety_disorder", 0.60}, {"hypertension", 0.55}},
	"chest_tightness":     {{"asthma", 0.65}, {"hypertension", 0.50}},
	"high_blood_pressure": {{"hypertension", 0.75}},
	"low_blood_pressure":  {{"hypertension", 0.70}},
	"palpitations":        {{"anxiety_disorder", 0.60}, {"hypertension", 0.55}},

	// sensory
	"blurred_vision":       {{"diabetes", 0.60}, {"migraine", 0.50}},
	"double_vision":        {{"migraine", 0.55}},
	"sensitivity_to_light": {{"migraine", 0.75}},
	"eye_pain":             {{"migraine", 0.50}},
	"ringing_in_ears":      {{"hypertension", 0.45}},
	"hearing_loss":         {{"sinusitis", 0.40}},
	"loss_of_smell":        {{"covid19", 0.70}, {"sinusitis", 0.50}},
	"loss_of_taste":        {{"covid19", 0.70}},

	// urinary
	"frequent_urination":   {{"diabetes", 0.70}, {"urinary_tract_infection", 0.65}},
	"painful_urination":    {{"urinary_tract_infection", 0.75}},
	"blood_in_urine":       {{"urinary_tract_infection", 0.75}},
	"difficulty_urinating": {{"urinary_tract_infection", 0.60}},
	"incontinence":         {{"urinary_tract_infection", 0.50}},

	// other
	"excessive_thirst":    {{"diabetes", 0.75}},
	"dry_mouth":           {{"diabetes", 0.55}},
	"bad_breath":          {{"sinusitis", 0.40}},
	"hair_loss":           {{"anxiety_disorder", 0.35}},
	"brittle_nails":       {{"diabetes", 0.30}},
	"swollen_lymph_nodes": {{"flu", 0.50}},
	"stiff_neck":          {{"migraine", 0.45}},
	"leg_cramps":          {{"diabetes", 0.45}},
}

// RuleSource is the deterministic rule-based candidate source. It has no
// external dependencies and no failure modes: unknown symptoms simply
// contribute nothing. It is the default and the fallback when the trained
// model artifact is unavailable.
type RuleSource struct{}

func NewRuleSource() *RuleSource {
	return &RuleSource{}
}

func (s *RuleSource) Name() string { return "rules" }

// Candidates looks each canonical symptom key up in the rule table.
// Severity and duration are ignored by this variant.
func (s *RuleSource) Candidates(symptoms []Symptom) ([]DiseaseCandidate, error) {
	var out []DiseaseCandidate
	for _, sym := range symptoms {
		for _, e := range ruleTable[sym.Name] {
			out = append(out, candidateFor(e.disease, e.weight))
		}
	}
	return out, nil
}

// KnownSymptomKeys lists every key in the rule table, for seeding the
// symptom catalog.
func KnownSymptomKeys() []string {
	keys := make([]string, 0, len(ruleTable))
	for k := range ruleTable {
		keys = append(keys, k)
	}
	return keys
}
