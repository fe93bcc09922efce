package content

var homeZH = Home{
	Nav: Nav{
		Home:     "首页",
		Attorney: "律师介绍",
		Practice: "服务领域",
		WhyUs:    "为什么选择我们",
		Contact:  "联系我们",
		CTA:      "立即咨询",
	},
	Hero: Hero{
		Title:    "柯奇律师事务所",
		Subtitle: "Colucci Law Firm, P. C.",
		Slogans: []string{
			"强势辩护，全心守护!",
			"客户利益，始终第一!",
			"大小案件，全力以赴!",
		},
		CTA: "免费咨询",
	},
	Practice: Practice{
		Tag:   "专业领域",
		Title: "专业服务领域",
		Areas: map[Slug]PracticeArea{
			SlugLitigation: {
				Title: "诉讼辩护",
				Items: []string{"民事纠纷", "刑事辩护", "交通违规", "酒驾案件"},
			},
			SlugFamily: {
				Title: "家庭事务",
				Items: []string{"离婚诉讼", "子女监护", "家暴限制令", "遗产继承"},
			},
			SlugRealEstate: {
				Title: "房产事务",
				Items: []string{"住宅买卖", "商业地产", "地契更名", "租赁纠纷"},
			},
			SlugCommercial: {
				Title: "商业事务",
				Items: []string{"租约合同", "生意转让", "商业纠纷", "商业注册"},
			},
			SlugImmigration: {
				Title: "移民服务",
				Items: []string{"递解令/保释", "婚姻绿卡", "亲属移民", "公民入籍"},
			},
			SlugInjury: {
				Title: "伤害索赔",
				Items: []string{"意外伤害 (滑倒/车祸)", "工地事故", "医疗事故", "工伤索赔"},
			},
		},
	},
	Attorney: Attorney{
		Title: "律师介绍",
		Badge: "执业律师",
		Name:  "Joseph C. Colucci, Esq.",
		Role:  "首席律师",
		Description: "资深经验：20 多年法律实践，深谙法律法规和诉讼策略。" +
			"个性化服务：倾力亲为，细致处理每个案件。懂法律，更懂华人！",
		Quote: "疑难杂症专家，为您排忧解难",
		Image: "/images/attorney.jpg",
		Stats: AttorneyStats{
			Years:          "20+",
			YearsLabel:     "执业经验（年）",
			Languages:      "4",
			LanguagesLabel: "服务语言",
		},
	},
	Vision: Vision{
		Tag:   "事务所愿景",
		Title: "让法律有温度",
		Description: "法律问题来临时往往措手不及，更何况还要面对语言的隔阂。" +
			"我们希望每一位客户都能被倾听、被理解、被全力守护，不因语言而错失权益。",
		Principles: []string{
			"每个案件由律师亲自跟进，绝不敷衍转手。",
			"用您听得懂的语言，讲清楚法律问题。",
			"签约之前，先给出诚实的案件评估。",
			"收费透明，事先说明，绝无隐藏费用。",
		},
		QuoteTitle: "我们的承诺",
		Quote:      "当法律让您感到陌生，我们确保您不会孤军奋战。",
		FirmName:   "柯奇律师事务所",
		FirmDesc:   "扎根新泽西，服务华人社区二十余年。",
		FirmSlogan: "懂法律，更懂华人。",
		Tags: []string{
			"诚信为本",
			"经验丰富",
			"双语服务",
		},
	},
	WhyUs: WhyUs{
		TitlePrefix: "为什么选择",
		TitleName:   "Joseph C. Colucci, Esq.?",
		Items: []WhyUsItem{
			{
				Title: "资深经验",
				Desc:  "20 多年法律实践，深谙法律法规和诉讼策略",
			},
			{
				Title: "个性化服务",
				Desc:  "倾力亲为，细致处理每个案件",
			},
			{
				Title: "多语种支持",
				Desc:  "英语/普通话/福州话/广东话助理，无语言障碍",
			},
			{
				Title: "疑难杂症专家",
				Desc:  "擅长处理复杂案件，为您排忧解难",
			},
		},
		Slogan: "懂法律，更懂华人!",
	},
	Contact: Contact{
		Title:             "联系方式",
		Hotline:           "中文服务热线",
		PriorityLineLabel: "优先专线",
		CallPriorityLabel: "一键拨打",
		Phones: Phones{
			Mandarin: "尤女士 732-668-1420 (普通话)",
			Fuzhou:   "黄先生 732-325-7898 (福州话/粤语)",
			Office:   "电话: 732-557-5426",
			Fax:      "传真: 732-862-8888",
		},
		Email: "邮箱: Jcoluccilaw@gmail.com",
		Hours: Hours{
			Weekday:  "周一至周五 9:00 - 18:00",
			Saturday: "周六 预约服务",
		},
		Locations: Locations{
			Title: "办公室地址",
			Edison: Location{
				Label:    "爱迪生",
				Address:  "Edison Office: 1967 Route 27, Suite 26, Edison, NJ 08817",
				MapTitle: "爱迪生办公室地图",
			},
			TomsRiver: Location{
				Label:    "汤姆斯河",
				Address:  "Toms River Office: 1 Hadley Ave, Toms River, NJ 08753",
				MapTitle: "汤姆斯河办公室地图",
			},
		},
		Form: Form{
			Name:    "您的姓名",
			Email:   "您的邮箱",
			Message: "请输入您的留言",
			Submit:  "发送留言",
		},
	},
	Footer: Footer{
		Copyright: "© 2025 柯奇律师事务所 Colucci Law Firm, P.C. 版权所有",
		Description: "柯奇律师事务所扎根新泽西，为华人社区提供中英双语法律服务，" +
			"涵盖诉讼辩护、家庭事务、房产商业、移民事务与人身伤害索赔。",
		QuickLinks:  "快速导航",
		ContactInfo: "联系信息",
		Disclaimer: "律师广告。本网站内容仅供参考信息使用，不构成法律建议。" +
			"浏览本网站、提交咨询或拨打电话均不构成律师-客户关系；" +
			"律师-客户关系仅以签署书面委托协议为准。过往案件结果不代表对类似结果的保证。" +
			"每个案件均基于具体事实，结果可能因情况而异。" +
			"本所提供的有限范围代理服务，遵循《新泽西州职业行为规则》第1.2(c)条的规定。",
	},
}
