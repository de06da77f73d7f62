package dto

// InspectionChecklistRequest describes the apartment the checklist is generated for.
type InspectionChecklistRequest struct {
	Area  float64 `json:"area" binding:"required,gt=0" example:"54.5"` // Floor area in square meters
	Year  int     `json:"year" binding:"required,gt=0" example:"1978"` // Construction year
	Floor int     `json:"floor" binding:"required" example:"3"`        // Floor the apartment is on
}

// ContractorQuestionsRequest asks for questions to put to a tradesperson
// working on a given section type.
type ContractorQuestionsRequest struct {
	SectionType  string                 `json:"sectionType" binding:"required" example:"hydraulika"`
	PropertyData map[string]interface{} `json:"propertyData" binding:"required"`
}

// ChecklistResponse carries generated checklist items.
type ChecklistResponse struct {
	Checklist []string `json:"checklist"`
}

// QuestionsResponse carries generated contractor questions.
type QuestionsResponse struct {
	Questions []string `json:"questions"`
}
