package db_models

// KnowledgeSection is a named blob of curated travel-guide text
// (overview, attractions, tips, ...). The grounding validator checks
// claim word-overlap against the concatenation of these sections.
type KnowledgeSection struct {
	BaseModel
	Section string `gorm:"index"`
	Content string
}

func (KnowledgeSection) TableName() string { return "knowledge_sections" }
