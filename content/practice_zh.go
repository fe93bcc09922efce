package content

var detailZH = map[Slug]Detail{
	SlugLitigation: {
		Title:    "诉讼辩护",
		Subtitle: "Litigation & Defense",
		Summary: "针对民事纠纷、刑事辩护、交通违规与酒驾案件，" +
			"我们提供从立案评估到庭审出庭的全流程法律服务。",
		ServicesTitle: "我们可处理的案件",
		Services:      []string{"民事纠纷", "刑事辩护", "交通违规", "酒驾案件"},
		ProcessTitle:  "服务流程",
		Process: []string{
			"初步咨询与事实梳理",
			"风险评估与策略制定",
			"谈判和解或进入诉讼程序",
			"庭审代理与后续执行建议",
		},
		NoteTitle: "提示",
		Note:      "不同案件处理路径会因证据与程序阶段而变化，请尽早咨询以保护关键证据和时效。",
	},
	SlugFamily: {
		Title:    "家庭事务",
		Subtitle: "Family Law",
		Summary: "我们协助客户处理离婚、子女监护、家暴限制令与遗产继承等家庭法律问题，" +
			"重点关注长期稳定与可执行性。",
		ServicesTitle: "我们可处理的案件",
		Services:      []string{"离婚诉讼", "子女监护", "家暴限制令", "遗产继承"},
		ProcessTitle:  "服务流程",
		Process: []string{
			"明确目标与核心争议",
			"准备证据与法律文件",
			"协商、调解或进入诉讼",
			"判决/协议后的执行与跟进",
		},
		NoteTitle: "提示",
		Note:      "家庭案件通常同时涉及情绪和法律判断，建议尽早建立可执行、可落地的方案。",
		SubTopic: &SubTopic{
			Title: "新泽西协议离婚｜固定费用｜流程简明",
			Intro: "双方已达成一致？离婚，也可以安静、清楚、体面地完成。" +
				"我们专注协议离婚（无争议）案件，以固定费用、规范文件和高效流程帮助客户稳妥推进。",
			FocusTitle: "服务特点",
			FocusPoints: []string{
				"仅限协议离婚（无争议）",
				"固定费用，无隐藏收费",
				"多数情况无需出庭",
				"注重隐私，低调专业处理",
				"文件准备规范、清晰、完整",
				"流程高效，尽量节省时间",
			},
			PrepTitle: "服务项目",
			PrepChecklist: []string{
				"基础无争议离婚：无子女、简单财产分配，起草并提交法院文件",
				"涉及子女的离婚：未成年子女抚养安排及计算，起草并提交法院文件",
				"资产复杂的离婚：房产、退休账户、商业权益等分配，定制婚姻财产协议",
				"优先加急处理：加快起草与提交，优先沟通并安排日程",
			},
			FAQTitle: "常见问题",
			FAQs: []FAQ{
				{
					Question: "你们的费用是固定的吗？",
					Answer:   "是。固定费用将在咨询后，根据具体案件事实和复杂程度一次性明确，不做隐藏收费。",
				},
				{
					Question: "是不是所有离婚都适用这个服务？",
					Answer: "不是。该服务定位于双方已达成一致的协议离婚（无争议）案件；" +
						"存在重大争议时，通常需要改用诉讼路径。",
				},
				{
					Question: "是否一定要出庭？",
					Answer:   "多数协议离婚案件无需频繁出庭，但是否出庭仍取决于法院具体要求和案件情况。",
				},
			},
		},
	},
	SlugRealEstate: {
		Title:    "房产事务",
		Subtitle: "Real Estate",
		Summary: "覆盖住宅与商业地产交易、过户、产权文件与租赁纠纷，" +
			"帮助客户控制交易风险并确保流程合规。",
		ServicesTitle: "我们可处理的案件",
		Services:      []string{"住宅买卖", "商业地产", "过户文件", "租赁纠纷"},
		ProcessTitle:  "服务流程",
		Process: []string{
			"交易/纠纷背景审查",
			"合同条款与风险点识别",
			"文件准备与谈判",
			"交割、登记或争议解决",
		},
		NoteTitle: "提示",
		Note:      "签约前审查条款通常成本更低、效果更好，可显著降低后续纠纷概率。",
	},
	SlugCommercial: {
		Title:    "商业事务",
		Subtitle: "Commercial Business",
		Summary: "我们为企业与个体经营者提供合同、股权与经营结构相关支持，" +
			"协助降低交易风险并提升合规效率。",
		ServicesTitle: "我们可处理的案件",
		Services:      []string{"租赁合同", "生意转让", "商业纠纷", "企业注册"},
		ProcessTitle:  "服务流程",
		Process: []string{
			"业务需求与风险盘点",
			"合同/结构方案设计",
			"文件签署与合规落地",
			"争议预防与后续优化",
		},
		NoteTitle: "提示",
		Note:      "商业决策应同步考虑税务、责任隔离与退出机制，避免后期成本放大。",
	},
	SlugImmigration: {
		Title:    "移民事务",
		Subtitle: "Immigration Services",
		Summary: "针对驱逐辩护、婚姻绿卡、亲属移民与入籍申请，" +
			"我们提供程序规划、材料整理和面谈准备支持。",
		ServicesTitle: "我们可处理的案件",
		Services:      []string{"驱逐辩护与保释", "婚姻绿卡", "亲属移民", "公民入籍"},
		ProcessTitle:  "服务流程",
		Process: []string{
			"资格与路径评估",
			"材料准备与递交",
			"补件、面谈与听证准备",
			"结果跟进与后续身份规划",
		},
		NoteTitle: "提示",
		Note:      "移民案件高度依赖文件完整性与时间节点管理，建议尽早启动准备。",
	},
	SlugInjury: {
		Title:    "人身伤害",
		Subtitle: "Injury Claims",
		Summary: "我们代理车祸、滑倒摔伤、工伤与医疗过失等案件，" +
			"帮助客户在证据、责任与赔偿计算上建立优势。",
		ServicesTitle: "我们可处理的案件",
		Services: []string{
			"意外伤害（滑倒摔伤）",
			"车祸案件",
			"工伤事故",
			"医疗过失",
			"工伤赔偿",
		},
		ProcessTitle: "服务流程",
		Process: []string{
			"事故经过与责任初判",
			"医疗记录与损失证据整理",
			"与保险/对方谈判",
			"必要时提起诉讼并推进索赔",
		},
		NoteTitle: "提示",
		Note:      "事故发生后应尽快保存现场与医疗证据，避免影响责任认定和赔偿范围。",
	},
}

var detailLabelsZH = DetailLabels{
	Back:            "返回首页",
	Contact:         "联系咨询",
	Call:            "电话咨询",
	Email:           "邮件咨询",
	Copied:          "电话已复制",
	CopyFailed:      "复制失败，请手动复制",
	DisclaimerTitle: "重要声明",
	DisclaimerText: "本律师广告仅供参考信息使用，不构成法律建议。" +
		"除非签署书面委托协议，否则不形成律师-客户关系。" +
		"每个案件均基于具体事实，结果可能因情况而异。" +
		"本所提供的有限范围代理服务，遵循《新泽西州职业行为规则》第1.2(c)条的规定。" +
		"具体服务范围、费用及双方权利义务以签署的书面协议条款为准。",
}

var notFoundZH = NotFound{
	CodeLabel: "错误 404",
	Title:     "页面未找到",
	Description: "您访问的页面可能已移动、链接有误，或暂时不可用。" +
		"您可以返回首页、查看联系我们，或直接电话咨询。",
	Home:       "返回首页",
	Contact:    "联系我们",
	Call:       "电话咨询",
	LangSwitch: "English",
}
