package classifier

// Static keyword tables per language. Keywords must be lowercase;
// matching is substring containment over case-folded input. Romanized
// variants are included alongside native script because students type
// both.
var keywordTables = map[Lang]map[string][]string{
	LangEN: {
		SeverityHigh: {
			"kill myself",
			"suicide",
			"end my life",
			"want to die",
			"better off dead",
			"hurt myself",
			"self harm",
			"no reason to live",
		},
		SeverityMedium: {
			"hopeless",
			"worthless",
			"can't go on",
			"cant go on",
			"give up on everything",
			"hate myself",
			"nobody cares",
		},
		SeverityLow: {
			"annoying",
			"stressed",
			"anxious",
			"overwhelmed",
			"can't sleep",
			"so tired of",
		},
	},
	LangHI: {
		SeverityHigh: {
			"आत्महत्या",
			"खुदकुशी",
			"khudkushi",
			"marna chahta",
			"marna chahti",
			"jaan dena chahta",
			"अपनी जान",
		},
		SeverityMedium: {
			"निराश",
			"bekaar hoon",
			"haar gaya hoon",
			"khud se nafrat",
			"कोई परवाह नहीं",
		},
		SeverityLow: {
			"परेशान",
			"pareshan",
			"तनाव",
			"tanav",
			"udaas",
			"thak gaya",
		},
	},
	LangUR: {
		SeverityHigh: {
			"خودکشی",
			"khudkushi",
			"مرنا چاہتا",
			"marna chahta",
			"apni jaan lena",
			"اپنی جان",
		},
		SeverityMedium: {
			"مایوس",
			"bekar hoon",
			"خود سے نفرت",
			"khud se nafrat",
			"haar gaya hoon",
		},
		SeverityLow: {
			"پریشان",
			"pareshan",
			"ذہنی دباؤ",
			"udas",
			"thak gaya",
		},
	},
}
