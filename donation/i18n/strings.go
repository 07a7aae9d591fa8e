package i18n

var translations = map[Key]map[Language]string{
	KeyProjects: {
		EN: "📂 Projects",
		UA: "📂 Проєкти",
	},
	KeyHelp: {
		EN: "❓ Help",
		UA: "❓ Допомога",
	},
	KeyOptions: {
		EN: "⚙️ Options",
		UA: "⚙️ Опції",
	},
	KeyReset: {
		EN: "🔄 Reset",
		UA: "🔄 Скинути",
	},
	KeyBack: {
		EN: "⬅️ Back to menu",
		UA: "⬅️ Назад до меню",
	},
	KeyGreeting: {
		EN: "Language set to English 🇬🇧",
		UA: "Мову встановлено: Українська 🇺🇦",
	},
	KeyHelpText: {
		EN: "This bot collects donations for animal-welfare projects.\nOpen 📂 Projects to see the current causes and their payment details.\nEvery contribution helps!",
		UA: "Цей бот збирає пожертви на проєкти допомоги тваринам.\nВідкрийте 📂 Проєкти, щоб побачити актуальні збори та реквізити.\nКожен внесок важливий!",
	},
	KeyChooseProject: {
		EN: "Choose a project:",
		UA: "Оберіть проєкт:",
	},
	KeyChooseOption: {
		EN: "Choose an option:",
		UA: "Оберіть опцію:",
	},
	KeyOptionsPrompt: {
		EN: "Options:",
		UA: "Опції:",
	},
	KeyRequisites: {
		EN: "Requisites",
		UA: "Реквізити",
	},
}
