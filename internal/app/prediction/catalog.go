package prediction

// DiseaseInfo is the curated metadata for one disease in the canonical
// taxonomy. Both candidate sources draw display names, descriptions,
// severities and recommended actions from here, so the two variants can
// never drift apart on vocabulary.
type DiseaseInfo struct {
	Key         string
	DisplayName string
	Description string
	Severity    string
	Actions     []string
}

var defaultActions = []string{
	"Consult with a healthcare professional",
	"Monitor symptoms closely",
	"Seek medical attention if symptoms worsen",
}

const defaultDescription = "A medical condition requiring professional evaluation"

var catalog = map[string]DiseaseInfo{
	"common_cold": {
		Key:         "common_cold",
		DisplayName: "Common Cold",
		Description: "A viral infection of the upper respiratory tract causing mild symptoms",
		Severity:    SeverityMild,
		Actions: []string{
			"Rest and stay hydrated",
			"Use over-the-counter cold medications",
			"Gargle with warm salt water",
		},
	},
	"flu": {
		Key:         "flu",
		DisplayName: "Influenza (Flu)",
		Description: "A contagious respiratory illness caused by influenza viruses",
		Severity:    SeverityModerate,
		Actions: []string{
			"Rest and drink plenty of fluids",
			"Consider antiviral medications within 48 hours",
			"Monitor for complications",
		},
	},
	"covid19": {
		Key:         "covid19",
		DisplayName: "COVID-19",
		Description: "A respiratory illness caused by the SARS-CoV-2 virus",
		Severity:    SeverityModerate,
		Actions: []string{
			"Self-isolate immediately",
			"Monitor oxygen levels",
			"Seek medical attention if breathing worsens",
			"Stay hydrated and rest",
		},
	},
	"pneumonia": {
		Key:         "pneumonia",
		DisplayName: "Pneumonia",
		Description: "An infection that inflames air sacs in one or both lungs",
		Severity:    SeveritySevere,
		Actions: []string{
			"Seek immediate medical attention",
			"Take prescribed antibiotics as directed",
			"Get plenty of rest and fluids",
		},
	},
	"bronchitis": {
		Key:         "bronchitis",
		DisplayName: "Bronchitis",
		Description: "Inflammation of the bronchial tubes carrying air to lungs",
		Severity:    SeverityModerate,
		Actions:     defaultActions,
	},
	"asthma": {
		Key:         "asthma",
		DisplayName: "Asthma",
		Description: "A chronic condition affecting airways in the lungs",
		Severity:    SeverityModerate,
		Actions: []string{
			"Use prescribed inhaler",
			"Avoid known triggers",
			"Monitor breathing closely",
		},
	},
	"allergic_rhinitis": {
		Key:         "allergic_rhinitis",
		DisplayName: "Allergic Rhinitis",
		Description: "Allergic response causing nasal inflammation and symptoms",
		Severity:    SeverityMild,
		Actions: []string{
			"Avoid allergens",
			"Use antihistamines",
			"Consider allergy testing",
		},
	},
	"gastroenteritis": {
		Key:         "gastroenteritis",
		DisplayName: "Gastroenteritis",
		Description: "Inflammation of the digestive tract causing stomach upset",
		Severity:    SeverityModerate,
		Actions: []string{
			"Stay hydrated with clear fluids",
			"Avoid solid foods initially",
			"Rest and avoid dairy temporarily",
		},
	},
	"migraine": {
		Key:         "migraine",
		DisplayName: "Migraine",
		Description: "A neurological condition causing intense headaches",
		Severity:    SeverityModerate,
		Actions: []string{
			"Rest in a dark, quiet room",
			"Apply cold compress to head",
			"Take prescribed migraine medications",
		},
	},
	"hypertension": {
		Key:         "hypertension",
		DisplayName: "Hypertension",
		Description: "Persistently elevated blood pressure in arteries",
		Severity:    SeverityModerate,
		Actions: []string{
			"Monitor blood pressure regularly",
			"Follow a low-sodium diet",
			"Exercise regularly and maintain healthy weight",
		},
	},
	"diabetes": {
		Key:         "diabetes",
		DisplayName: "Diabetes",
		Description: "A metabolic disorder affecting blood sugar regulation",
		Severity:    SeveritySevere,
		Actions: []string{
			"Monitor blood sugar levels",
			"Follow a diabetic diet",
			"Take prescribed medications as directed",
		},
	},
	"urinary_tract_infection": {
		Key:         "urinary_tract_infection",
		DisplayName: "Urinary Tract Infection",
		Description: "Infection in any part of the urinary system",
		Severity:    SeverityModerate,
		Actions:     defaultActions,
	},
	"sinusitis": {
		Key:         "sinusitis",
		DisplayName: "Sinusitis",
		Description: "Inflammation or swelling of sinus tissue",
		Severity:    SeverityMild,
		Actions:     defaultActions,
	},
	"arthritis": {
		Key:         "arthritis",
		DisplayName: "Arthritis",
		Description: "Inflammation of joints causing pain and stiffness",
		Severity:    SeverityModerate,
		Actions: []string{
			"Take anti-inflammatory medications as prescribed",
			"Apply heat or cold to affected joints",
			"Engage in gentle exercise",
			"Maintain healthy weight",
		},
	},
	"anxiety_disorder": {
		Key:         "anxiety_disorder",
		DisplayName: "Anxiety Disorder",
		Description: "Mental health condition causing excessive worry",
		Severity:    SeverityModerate,
		Actions: []string{
			"Practice relaxation techniques",
			"Consider therapy or counseling",
			"Maintain regular sleep schedule",
		},
	},
	"depression": {
		Key:         "depression",
		DisplayName: "Depression",
		Description: "Mood disorder causing persistent sadness",
		Severity:    SeverityModerate,
		Actions: []string{
			"Seek professional help",
			"Maintain social connections",
			"Engage in regular physical activity",
		},
	},
	"skin_infection": {
		Key:         "skin_infection",
		DisplayName: "Skin Infection",
		Description: "Bacterial, viral, or fungal infection of the skin",
		Severity:    SeverityMild,
		Actions: []string{
			"Keep area clean and dry",
			"Apply prescribed topical treatment",
			"Avoid scratching",
			"See dermatologist if persistent",
		},
	},
	"tuberculosis": {
		Key:         "tuberculosis",
		DisplayName: "Tuberculosis",
		Description: "Serious bacterial infection primarily affecting lungs",
		Severity:    SeveritySevere,
		Actions:     defaultActions,
	},
}

// DiseaseByKey returns the catalog entry for a canonical disease key.
// Unknown keys get a titled display name with fallback metadata, so a
// candidate source can never produce a candidate without description,
// severity and actions.
func DiseaseByKey(key string) DiseaseInfo {
	if info, ok := catalog[key]; ok {
		return info
	}
	return DiseaseInfo{
		Key:         key,
		DisplayName: titleFromKey(key),
		Description: defaultDescription,
		Severity:    SeverityModerate,
		Actions:     defaultActions,
	}
}

// Diseases returns all catalog entries, for seeding and admin listings.
func Diseases() []DiseaseInfo {
	out := make([]DiseaseInfo, 0, len(catalog))
	for _, info := range catalog {
		out = append(out, info)
	}
	return out
}

func titleFromKey(key string) string {
	parts := []byte(key)
	upper := true
	for i, c := range parts {
		switch {
		case c == '_':
			parts[i] = ' '
			upper = true
		case upper && c >= 'a' && c <= 'z':
			parts[i] = c - 'a' + 'A'
			upper = false
		default:
			upper = false
		}
	}
	return string(parts)
}

// candidateFor builds a fully populated candidate for a disease key.
func candidateFor(key string, score float64) DiseaseCandidate {
	info := DiseaseByKey(key)
	return DiseaseCandidate{
		DiseaseName:        info.DisplayName,
		ConfidenceScore:    score,
		Description:        info.Description,
		Severity:           info.Severity,
		RecommendedActions: info.Actions,
	}
}
