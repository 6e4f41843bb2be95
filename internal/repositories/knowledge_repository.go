package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"yatra/internal/models/db_models"
)

// KnowledgeRepository returns curated travel-guide text by section name.
// The grounding validator concatenates the overview/attractions/tips
// sections into the corpus it checks claims against.
type KnowledgeRepository interface {
	GetContext(ctx context.Context, section string) (string, error)
}

type knowledgeRepository struct {
	db *gorm.DB
}

func NewKnowledgeRepository(db *gorm.DB) KnowledgeRepository {
	return &knowledgeRepository{db: db}
}

func (r *knowledgeRepository) GetContext(ctx context.Context, section string) (string, error) {
	var sections []db_models.KnowledgeSection
	err := r.db.WithContext(ctx).
		Where("section = ?", strings.ToLower(strings.TrimSpace(section))).
		Find(&sections).Error
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, s.Content)
	}
	return strings.Join(parts, "\n\n---\n\n"), nil
}

// StaticKnowledge serves sections from memory; default when no database is
// configured, and the fixture used in tests.
type StaticKnowledge struct {
	sections map[string]string
}

func NewStaticKnowledge(sections map[string]string) *StaticKnowledge {
	if sections == nil {
		sections = UdaipurKnowledgeSections()
	}
	normalized := make(map[string]string, len(sections))
	for k, v := range sections {
		normalized[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return &StaticKnowledge{sections: normalized}
}

func (s *StaticKnowledge) GetContext(_ context.Context, section string) (string, error) {
	return s.sections[strings.ToLower(strings.TrimSpace(section))], nil
}

// UdaipurKnowledgeSections is the built-in guide corpus.
func UdaipurKnowledgeSections() map[string]string {
	return map[string]string{
		"overview": "Udaipur, known as the City of Lakes, was founded in 1559 by Maharana Udai Singh II " +
			"as the capital of the Mewar kingdom. The old city wraps around Lake Pichola, with the City Palace " +
			"complex rising above its eastern shore. Udaipur is famous for its lakes, palaces, havelis, " +
			"miniature painting tradition, and rooftop restaurants overlooking the water.",
		"attractions": "The City Palace is the largest palace complex in Rajasthan, built over nearly 400 years " +
			"beginning under Maharana Udai Singh II; it houses the Crystal Gallery and offers views over Lake Pichola. " +
			"Jagdish Temple, built in 1651 by Maharana Jagat Singh, is dedicated to Lord Vishnu. " +
			"Lake Pichola offers sunset boat rides past Jag Mandir and the Lake Palace. " +
			"The Monsoon Palace, also called Sajjangarh, sits on a hilltop west of the city and was built in 1884 " +
			"by Maharana Sajjan Singh to watch the monsoon clouds. Saheliyon ki Bari is a garden of fountains " +
			"and marble pavilions made for the ladies of the court. Bagore Ki Haveli hosts the Dharohar folk " +
			"dance show each evening. The Bharatiya Lok Kala Museum displays folk art, masks, and puppets. " +
			"Fateh Sagar Lake has a promenade popular in the evening.",
		"tips": "Carry water and sun protection; afternoons are hot for most of the year and walking more than " +
			"short distances is unpleasant in the heat. Autos are cheap for hops between areas; agree the fare first. " +
			"Most attractions open around 9 AM and close by 6 PM; the Dharohar show starts at 7 PM. " +
			"Try dal baati churma and laal maans at local restaurants. The old city lanes around Jagdish Temple " +
			"are best explored on foot in the morning. Budget around 300 INR for City Palace entry.",
	}
}
