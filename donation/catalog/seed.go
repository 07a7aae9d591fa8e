package catalog

// seedProjects returns the default catalog used when no document exists yet.
func seedProjects() map[string]Project {
	return map[string]Project{
		"shelter": {
			Title: LocalizedText{
				EN: "🐾 Animal Shelter Construction",
				UA: "🐾 Будівництво Притулку",
			},
			Description: LocalizedText{
				EN: "We are building a new shelter for stray animals in Lviv. Donations help with materials, food, and meds.",
				UA: "Ми будуємо новий притулок для бездомних тварин у Львові. Пожертви підуть на будматеріали, їжу та ліки.",
			},
			Requisites: "IBAN: UA123456789\nCard: 1234 5678 9012 3456",
		},
		"food": {
			Title: LocalizedText{
				EN: "🍖 Food for Rescued Animals",
				UA: "🍖 Їжа для урятованих тварин",
			},
			Description: LocalizedText{
				EN: "We provide daily meals for over 80 animals. Join our monthly support program!",
				UA: "Щоденно годуємо понад 80 тварин. Долучайтесь до щомісячної підтримки!",
			},
			Requisites: "PayPal: food4animals@example.com\nCard: 4321 8765 2109 6543",
		},
	}
}
