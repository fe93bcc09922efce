package content

var detailEN = map[Slug]Detail{
	SlugLitigation: {
		Title:    "Litigation & Defense",
		Subtitle: "诉讼辩护",
		Summary: "We handle civil disputes, criminal defense, traffic violations, and DUI " +
			"cases with full support from case evaluation through courtroom representation.",
		ServicesTitle: "What We Handle",
		Services:      []string{"Civil Disputes", "Criminal Defense", "Traffic Violations", "DUI Cases"},
		ProcessTitle:  "How We Work",
		Process: []string{
			"Initial consultation and fact review",
			"Risk analysis and legal strategy",
			"Negotiation, settlement, or litigation filing",
			"Court representation and next-step guidance",
		},
		NoteTitle: "Important Note",
		Note:      "Every case strategy depends on evidence and timing. Early legal planning helps protect key rights.",
	},
	SlugFamily: {
		Title:    "Family Law",
		Subtitle: "家庭事务",
		Summary: "We support divorce, custody, restraining orders, and inheritance matters " +
			"with a focus on practical outcomes and long-term stability.",
		ServicesTitle: "What We Handle",
		Services:      []string{"Divorce Litigation", "Child Custody", "Restraining Orders", "Inheritance"},
		ProcessTitle:  "How We Work",
		Process: []string{
			"Clarify goals and key disputes",
			"Prepare evidence and legal documents",
			"Negotiate, mediate, or litigate",
			"Support enforcement and follow-up",
		},
		NoteTitle: "Important Note",
		Note:      "Family matters involve both legal and personal pressure. A clear, enforceable plan is critical.",
		SubTopic: &SubTopic{
			Title: "New Jersey Uncontested Divorce | Flat Fee | Clear Process",
			Intro: "If both parties have reached agreement, divorce can be handled quietly, " +
				"clearly, and with dignity. We focus on uncontested divorce matters with " +
				"flat-fee pricing and efficient document handling.",
			FocusTitle: "Service Highlights",
			FocusPoints: []string{
				"Uncontested divorce only",
				"Flat fee with no hidden charges",
				"In many cases, no court appearance is required",
				"Privacy-focused and discreet representation",
				"Clear, complete, court-ready documentation",
				"Efficient process designed to save time",
			},
			PrepTitle: "Service Scope",
			PrepChecklist: []string{
				"Basic uncontested divorce: no minor children, simple property allocation, drafting and court filing",
				"Divorce with children: parenting arrangements and support calculation, drafting and court filing",
				"Complex-asset divorce: property, retirement accounts, business interests, tailored marital settlement agreement",
				"Priority handling: accelerated drafting/filing preparation with prioritized communication and scheduling",
			},
			FAQTitle: "Frequently Asked Questions",
			FAQs: []FAQ{
				{
					Question: "Is your fee fixed?",
					Answer: "Yes. The flat fee is confirmed after consultation based on case " +
						"facts and complexity, with no hidden charges.",
				},
				{
					Question: "Does this service apply to every divorce case?",
					Answer: "No. This service is designed for uncontested divorce matters " +
						"where both parties already agree on key terms.",
				},
				{
					Question: "Will I need to appear in court?",
					Answer: "Many uncontested cases can proceed with minimal appearances, but " +
						"final requirements depend on court procedures and case details.",
				},
			},
		},
	},
	SlugRealEstate: {
		Title:    "Real Estate",
		Subtitle: "房产事务",
		Summary: "We assist with residential and commercial transactions, deed transfers, " +
			"and lease disputes to reduce risk and keep deals compliant.",
		ServicesTitle: "What We Handle",
		Services: []string{
			"Residential Buying/Selling",
			"Commercial Real Estate",
			"Deed Transfers",
			"Lease Disputes",
		},
		ProcessTitle: "How We Work",
		Process: []string{
			"Review transaction or dispute background",
			"Identify contract and title risks",
			"Draft/negotiation and documentation",
			"Closing, filing, or dispute resolution",
		},
		NoteTitle: "Important Note",
		Note:      "Pre-signing review is usually the most cost-effective way to avoid expensive downstream disputes.",
	},
	SlugCommercial: {
		Title:    "Commercial Business",
		Subtitle: "商业事务",
		Summary: "We advise businesses on contracts, transfer structures, and dispute " +
			"prevention to support safer growth and smoother operations.",
		ServicesTitle: "What We Handle",
		Services:      []string{"Lease Contracts", "Business Transfers", "Commercial Disputes", "Business Registration"},
		ProcessTitle:  "How We Work",
		Process: []string{
			"Assess business goals and risks",
			"Design structure and contract terms",
			"Document execution and compliance",
			"Dispute prevention and ongoing support",
		},
		NoteTitle: "Important Note",
		Note:      "Strong agreements should align with liability, tax, and exit considerations from day one.",
	},
	SlugImmigration: {
		Title:    "Immigration Services",
		Subtitle: "移民事务",
		Summary: "We represent clients in removal defense, marriage-based green cards, " +
			"family petitions, and naturalization matters.",
		ServicesTitle: "What We Handle",
		Services: []string{
			"Deportation Defense/Bail",
			"Marriage Green Cards",
			"Family Immigration",
			"Citizenship",
		},
		ProcessTitle: "How We Work",
		Process: []string{
			"Eligibility and pathway assessment",
			"Evidence and filing preparation",
			"RFE/interview/hearing preparation",
			"Status follow-up and next planning",
		},
		NoteTitle: "Important Note",
		Note:      "Immigration outcomes often depend on documentation quality and timeline control. Start early.",
	},
	SlugInjury: {
		Title:    "Injury Claims",
		Subtitle: "人身伤害",
		Summary: "We handle injury claims involving car accidents, slips/falls, workplace " +
			"incidents, and medical malpractice matters.",
		ServicesTitle: "What We Handle",
		Services: []string{
			"Slip and Fall Injuries",
			"Car Accidents",
			"Workplace Accidents",
			"Medical Malpractice",
			"Workers' Compensation",
		},
		ProcessTitle: "How We Work",
		Process: []string{
			"Incident review and liability analysis",
			"Medical and loss documentation",
			"Insurance negotiation",
			"Litigation when needed",
		},
		NoteTitle: "Important Note",
		Note:      "Preserving evidence immediately after an incident can materially affect compensation outcomes.",
	},
}

var detailLabelsEN = DetailLabels{
	Back:            "Back to Home",
	Contact:         "Contact Us",
	Call:            "Call Us",
	Email:           "Email Us",
	Copied:          "Phone copied",
	CopyFailed:      "Copy failed, please copy manually",
	DisclaimerTitle: "Important Disclaimer",
	DisclaimerText: "This attorney advertising is for informational purposes only and does " +
		"not constitute legal advice. No attorney-client relationship is formed unless a " +
		"written engagement agreement is signed. Every case depends on specific facts, and " +
		"outcomes may vary. Any limited-scope representation is provided in accordance with " +
		"New Jersey Rule of Professional Conduct 1.2(c). The scope of services, fees, and " +
		"respective rights and obligations are governed by the signed written agreement.",
}

var notFoundEN = NotFound{
	CodeLabel: "Error 404",
	Title:     "Page Not Found",
	Description: "The page may have been moved, the link may be incorrect, or it may be " +
		"temporarily unavailable. You can return home, visit contact, or call now.",
	Home:       "Back to Home",
	Contact:    "Contact Us",
	Call:       "Call Now",
	LangSwitch: "中文",
}
