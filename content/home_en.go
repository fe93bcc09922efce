package content

var homeEN = Home{
	Nav: Nav{
		Home:     "Home",
		Attorney: "Attorney",
		Practice: "Practice Areas",
		WhyUs:    "Why Us",
		Contact:  "Contact",
		CTA:      "Consult Now",
	},
	Hero: Hero{
		Title:    "Colucci Law Firm, P.C.",
		Subtitle: "Strong Defense, Wholehearted Protection",
		Slogans: []string{
			"Strong Defense, Wholehearted Protection!",
			"Client Interests Always Come First!",
			"Fully Committed to Cases Big and Small!",
		},
		CTA: "Get a Consultation",
	},
	Practice: Practice{
		Tag:   "What We Do",
		Title: "Practice Areas",
		Areas: map[Slug]PracticeArea{
			SlugLitigation: {
				Title: "Litigation & Defense",
				Items: []string{
					"Civil Disputes",
					"Criminal Defense",
					"Traffic Violations",
					"DUI Cases",
				},
			},
			SlugFamily: {
				Title: "Family Law",
				Items: []string{
					"Divorce Litigation",
					"Child Custody",
					"Domestic Violence Restraining Orders",
					"Inheritance",
				},
			},
			SlugRealEstate: {
				Title: "Real Estate",
				Items: []string{
					"Residential Buying/Selling",
					"Commercial Real Estate",
					"Deed Transfers",
					"Lease Disputes",
				},
			},
			SlugCommercial: {
				Title: "Commercial Business",
				Items: []string{
					"Lease Contracts",
					"Business Transfers",
					"Commercial Disputes",
					"Business Registration",
				},
			},
			SlugImmigration: {
				Title: "Immigration Services",
				Items: []string{
					"Deportation Defense/Bail",
					"Marriage Green Cards",
					"Family Immigration",
					"Citizenship",
				},
			},
			SlugInjury: {
				Title: "Injury Claims",
				Items: []string{
					"Accidental Injury (Slip & Fall)",
					"Car Accidents",
					"Workplace Accidents",
					"Medical Malpractice",
					"Workers' Compensation",
				},
			},
		},
	},
	Attorney: Attorney{
		Title: "Meet The Attorney",
		Badge: "Attorney At Law",
		Name:  "Joseph C. Colucci, Esq.",
		Role:  "Founder & Lead Attorney",
		Description: "With over 20 years of legal practice, Mr. Colucci possesses a deep " +
			"understanding of laws, regulations, and litigation strategies. He is dedicated " +
			"to providing personalized service, handling every case with meticulous detail. " +
			"We understand the law, and we understand the Chinese community.",
		Quote: "Understand Law, Understand You.",
		Image: "/images/attorney.jpg",
		Stats: AttorneyStats{
			Years:          "20+",
			YearsLabel:     "Years of Practice",
			Languages:      "4",
			LanguagesLabel: "Languages Spoken",
		},
	},
	Vision: Vision{
		Tag:   "Our Vision",
		Title: "Law With a Human Voice",
		Description: "Legal trouble rarely arrives at a convenient time, and it rarely " +
			"arrives in your first language. Our vision is a firm where every client is " +
			"heard, understood, and defended without anything being lost in translation.",
		Principles: []string{
			"Every case gets the attorney's personal attention, not a hand-off.",
			"Advice in plain language, in your language.",
			"Honest assessments before any engagement is signed.",
			"Fees explained up front, with no surprises.",
		},
		QuoteTitle: "Our Promise",
		Quote:      "When the law feels foreign, we make sure you never stand alone.",
		FirmName:   "Colucci Law Firm, P.C.",
		FirmDesc:   "A New Jersey firm serving the Chinese community for over two decades.",
		FirmSlogan: "Understand Law, Understand Chinese Community.",
		Tags: []string{
			"Integrity",
			"Experience",
			"Bilingual Service",
		},
	},
	WhyUs: WhyUs{
		TitlePrefix: "Why Choose",
		TitleName:   "Joseph C. Colucci, Esq.?",
		Items: []WhyUsItem{
			{
				Title: "Senior Experience",
				Desc:  "Over 20 years of legal practice, deep knowledge of regulations and strategy.",
			},
			{
				Title: "Personalized Service",
				Desc:  "Hands-on approach, handling every case with meticulous care.",
			},
			{
				Title: "Multi-language Support",
				Desc:  "English, Mandarin, Fuzhou, and Cantonese support. No language barriers.",
			},
			{
				Title: "Complex Case Expert",
				Desc:  "Specializing in difficult cases to solve your problems.",
			},
		},
		Slogan: "Understand Law, Understand Chinese Community!",
	},
	Contact: Contact{
		Title:             "Contact Us",
		Hotline:           "Chinese Service Hotline",
		PriorityLineLabel: "Priority Line",
		CallPriorityLabel: "Call Now",
		Phones: Phones{
			Mandarin: "Ms. You: 732-668-1420 (Mandarin)",
			Fuzhou:   "Mr. Huang: 732-325-7898 (Fuzhou/Cantonese)",
			Office:   "Phone: 732-557-5426",
			Fax:      "Fax: 732-862-8888",
		},
		Email: "Email: Jcoluccilaw@gmail.com",
		Hours: Hours{
			Weekday:  "Mon-Fri: 9:00 AM - 6:00 PM",
			Saturday: "Sat: By Appointment",
		},
		Locations: Locations{
			Title: "Office Locations",
			Edison: Location{
				Label:    "Edison",
				Address:  "1967 Route 27, Suite 26, Edison, NJ 08817",
				MapTitle: "Map of the Edison office",
			},
			TomsRiver: Location{
				Label:    "Toms River",
				Address:  "1 Hadley Ave, Toms River, NJ 08753",
				MapTitle: "Map of the Toms River office",
			},
		},
		Form: Form{
			Name:    "Your Name",
			Email:   "Your Email",
			Message: "How can we help?",
			Submit:  "Send Message",
		},
	},
	Footer: Footer{
		Copyright: "© 2025 Colucci Law Firm, P.C. All Rights Reserved.",
		Description: "A New Jersey law firm serving the Chinese community with bilingual " +
			"representation in litigation, family, real estate, business, immigration, " +
			"and injury matters.",
		QuickLinks:  "Quick Links",
		ContactInfo: "Contact Info",
		Disclaimer: "Attorney Advertising. The materials on this website are provided for " +
			"informational purposes only and do not constitute legal advice. Viewing this " +
			"website, submitting an inquiry, or placing a call does not create an " +
			"attorney-client relationship; such a relationship is formed only by a signed " +
			"written engagement agreement. Prior results do not guarantee a similar outcome. " +
			"Every case depends on its specific facts, and outcomes may vary. Any " +
			"limited-scope representation is provided in accordance with New Jersey Rule of " +
			"Professional Conduct 1.2(c).",
	},
}
