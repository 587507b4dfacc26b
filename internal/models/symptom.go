package models

const (
	SymptomCategoryPhysical  = "physical"
	SymptomCategoryEmotional = "emotional"
	SymptomCategoryIntimate  = "intimate"
)

type Symptom struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	// Quick symptoms can be toggled from the home screen without a full
	// check-in; each toggle-on lands in the day's timeline.
	Quick bool `json:"quick"`
}

func SymptomCatalog() []Symptom {
	return []Symptom{
		{ID: "hot_flash", Name: "Calores (Fogachos)", Category: SymptomCategoryPhysical, Quick: true},
		{ID: "insomnia", Name: "Insônia", Category: SymptomCategoryPhysical},
		{ID: "fatigue", Name: "Fadiga Extrema", Category: SymptomCategoryPhysical},
		{ID: "headache", Name: "Dor de Cabeça", Category: SymptomCategoryPhysical, Quick: true},
		{ID: "bloating", Name: "Inchaço", Category: SymptomCategoryPhysical},
		{ID: "joint_pain", Name: "Dor Articular", Category: SymptomCategoryPhysical},
		{ID: "palpitations", Name: "Palpitações", Category: SymptomCategoryPhysical, Quick: true},
		{ID: "night_sweats", Name: "Sudorese Noturna", Category: SymptomCategoryPhysical, Quick: true},
		{ID: "dry_skin_mouth", Name: "Ressecamento Pele/Boca", Category: SymptomCategoryPhysical},
		{ID: "hair_loss", Name: "Queda de Cabelo", Category: SymptomCategoryPhysical},
		{ID: "tinnitus", Name: "Zumbido", Category: SymptomCategoryPhysical},
		{ID: "tingling", Name: "Formigamento Mãos/Pés", Category: SymptomCategoryPhysical},
		{ID: "anxiety", Name: "Ansiedade", Category: SymptomCategoryEmotional, Quick: true},
		{ID: "irritability", Name: "Irritabilidade", Category: SymptomCategoryEmotional},
		{ID: "brain_fog", Name: "Brain Fog (Névoa)", Category: SymptomCategoryEmotional},
		{ID: "sadness", Name: "Tristeza/Depressão", Category: SymptomCategoryEmotional},
		{ID: "mood_swings", Name: "Oscilação de Humor", Category: SymptomCategoryEmotional},
		{ID: "dryness", Name: "Ressecamento Vaginal", Category: SymptomCategoryIntimate},
		{ID: "low_libido", Name: "Libido Baixa", Category: SymptomCategoryIntimate},
		{ID: "pain_sex", Name: "Dor na Relação", Category: SymptomCategoryIntimate},
	}
}

func KnownSymptom(id string) bool {
	for _, symptom := range SymptomCatalog() {
		if symptom.ID == id {
			return true
		}
	}
	return false
}

// SymptomName falls back to the raw id for symptoms recorded before a
// catalog entry was renamed or removed.
func SymptomName(id string) string {
	for _, symptom := range SymptomCatalog() {
		if symptom.ID == id {
			return symptom.Name
		}
	}
	return id
}
