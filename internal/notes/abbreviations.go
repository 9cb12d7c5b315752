package notes

// abbreviations maps common clinical shorthand to its expansion. Words
// are matched after lowercasing and trimming trailing punctuation.
var abbreviations = map[string]string{
	"htn":  "hypertension",
	"dm":   "diabetes mellitus",
	"dm2":  "type 2 diabetes",
	"dm1":  "type 1 diabetes",
	"t2dm": "type 2 diabetes",
	"t1dm": "type 1 diabetes",
	"chf":  "congestive heart failure",
	"cad":  "coronary artery disease",
	"copd": "chronic obstructive pulmonary disease",
	"ckd":  "chronic kidney disease",
	"esrd": "end-stage renal disease",
	"af":   "atrial fibrillation",
	"afb":  "atrial fibrillation",
	"mi":   "myocardial infarction",
	"dvt":  "deep vein thrombosis",
	"pe":   "pulmonary embolism",
	"vte":  "venous thromboembolism",
	"tia":  "transient ischemic attack",
	"cva":  "cerebrovascular accident",
	"tbi":  "traumatic brain injury",
	"uti":  "urinary tract infection",
	"uri":  "upper respiratory infection",
	"lri":  "lower respiratory infection",
	"pna":  "pneumonia",
	"r/o":  "rule out",
	"sob":  "shortness of breath",
	"cp":   "chest pain",
	"abd":  "abdominal",
	"fx":   "fracture",
	"sx":   "symptom",
	"dx":   "diagnosis",
	"hx":   "history",
	"tx":   "treatment",
	"px":   "prognosis",
	"f/u":  "follow-up",
	"n/v":  "nausea/vomiting",
	"c/o":  "complains of",
	"b/l":  "bilateral",
}
