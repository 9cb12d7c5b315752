package model

// Demographics describes the patient extracted from a clinical note.
type Demographics struct {
	Age      int    `json:"age,omitempty"`
	Sex      string `json:"sex,omitempty"`       // Male, Female
	AgeGroup string `json:"age_group,omitempty"` // Neonate .. Elderly
}

// PrimaryCondition is the presenting diagnosis and its acuity.
type PrimaryCondition struct {
	Diagnosis     string `json:"diagnosis,omitempty"`
	ConditionType string `json:"condition_type"` // Acute, Chronic, Acute-on-chronic, Unknown
}

// CareContext captures where and how severely the patient presents.
type CareContext struct {
	Setting  string `json:"setting"`  // Inpatient, Outpatient, ICU, Emergency Department, Unknown
	Severity string `json:"severity"` // Critical, Moderate, Mild, Unknown
	Duration string `json:"duration,omitempty"`
}

// ClinicalContext is the structured view of a free-text clinical note.
// It feeds PICO construction and specialty-based year-range selection.
type ClinicalContext struct {
	OriginalNote       string           `json:"original_note"`
	Demographics       Demographics     `json:"demographics"`
	PrimaryCondition   PrimaryCondition `json:"primary_condition"`
	Comorbidities      []string         `json:"comorbidities"`
	Care               CareContext      `json:"clinical_context"`
	TreatmentDecisions []string         `json:"treatment_decisions"`
	Contraindications  []string         `json:"contraindications"`
	PatientFactors     []string         `json:"patient_specific_factors"`
}
