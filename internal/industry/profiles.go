package industry

// profiles is ordered; Lookup returns the first match so order is part of the contract.
var profiles = []Profile{
	{
		Name: "Software Engineer",
		Technical: []string{
			"javascript", "python", "java", "go", "typescript", "react", "node.js", "sql",
			"aws", "docker", "kubernetes", "microservices", "rest api", "ci/cd", "git",
		},
		Skills: []string{
			"problem solving", "collaboration", "communication", "code review", "mentoring", "agile",
		},
		Tools:          []string{"jira", "github", "terraform", "linux"},
		Certifications: []string{"aws certified", "kubernetes", "google cloud", "azure"},
		Action:         []string{"architected", "deployed", "refactored", "debugged", "automated", "scaled"},
	},
	{
		Name: "Data Scientist",
		Technical: []string{
			"python", "sql", "machine learning", "deep learning", "statistics", "pandas",
			"tensorflow", "pytorch", "scikit-learn", "data visualization", "a/b testing", "nlp",
		},
		Skills: []string{
			"analytical thinking", "communication", "storytelling", "problem solving", "curiosity",
		},
		Tools:          []string{"jupyter", "tableau", "spark", "airflow"},
		Certifications: []string{"tensorflow developer", "aws certified", "google cloud"},
		Action:         []string{"modeled", "predicted", "analyzed", "trained", "visualized", "forecasted"},
	},
	{
		Name: "Product Manager",
		Technical: []string{
			"roadmap", "product strategy", "user research", "a/b testing", "analytics", "kpi",
			"go-to-market", "requirements", "prioritization", "agile", "scrum",
		},
		Skills: []string{
			"stakeholder management", "leadership", "communication", "negotiation", "decision making",
		},
		Tools:          []string{"jira", "confluence", "figma", "amplitude"},
		Certifications: []string{"pmp", "cspo", "pragmatic"},
		Action:         []string{"launched", "prioritized", "defined", "shipped", "aligned", "validated"},
	},
	{
		Name: "Project Manager",
		Technical: []string{
			"project planning", "risk management", "budgeting", "scheduling", "scope management",
			"agile", "scrum", "waterfall", "resource allocation", "reporting",
		},
		Skills: []string{
			"leadership", "communication", "stakeholder management", "negotiation", "organization",
		},
		Tools:          []string{"ms project", "jira", "asana", "smartsheet"},
		Certifications: []string{"pmp", "prince2", "capm", "csm"},
		Action:         []string{"coordinated", "delivered", "scheduled", "facilitated", "managed", "planned"},
	},
	{
		Name: "Marketing",
		Technical: []string{
			"seo", "sem", "content marketing", "social media", "email marketing", "google analytics",
			"campaign management", "brand strategy", "marketing automation", "ppc", "copywriting",
		},
		Skills: []string{
			"creativity", "communication", "analytical thinking", "storytelling", "collaboration",
		},
		Tools:          []string{"hubspot", "salesforce", "mailchimp", "hootsuite"},
		Certifications: []string{"google ads", "hubspot", "facebook blueprint"},
		Action:         []string{"promoted", "branded", "campaigned", "grew", "engaged", "converted"},
	},
	{
		Name: "Sales",
		Technical: []string{
			"crm", "lead generation", "pipeline management", "account management", "prospecting",
			"negotiation", "forecasting", "b2b", "saas", "quota", "cold calling",
		},
		Skills: []string{
			"relationship building", "communication", "persuasion", "resilience", "active listening",
		},
		Tools:          []string{"salesforce", "hubspot", "outreach", "linkedin sales navigator"},
		Certifications: []string{"salesforce", "spin selling", "sandler"},
		Action:         []string{"closed", "exceeded", "negotiated", "prospected", "won", "expanded"},
	},
	{
		Name: "Nurse",
		Technical: []string{
			"patient care", "medication administration", "vital signs", "electronic health records",
			"iv therapy", "wound care", "triage", "care planning", "infection control", "bls", "acls",
		},
		Skills: []string{
			"compassion", "communication", "critical thinking", "attention to detail", "teamwork",
		},
		Tools:          []string{"epic", "cerner", "pyxis"},
		Certifications: []string{"rn", "bls", "acls", "pals", "ccrn"},
		Action:         []string{"administered", "assessed", "monitored", "educated", "treated", "advocated"},
	},
	{
		Name: "Teacher",
		Technical: []string{
			"curriculum development", "lesson planning", "classroom management", "differentiated instruction",
			"assessment", "special education", "edtech", "student engagement", "common core",
		},
		Skills: []string{
			"patience", "communication", "creativity", "adaptability", "mentoring",
		},
		Tools:          []string{"google classroom", "canvas", "smartboard"},
		Certifications: []string{"teaching license", "tesol", "national board"},
		Action:         []string{"taught", "designed", "mentored", "assessed", "facilitated", "inspired"},
	},
	{
		Name: "Accountant",
		Technical: []string{
			"gaap", "financial reporting", "reconciliation", "accounts payable", "accounts receivable",
			"general ledger", "audit", "tax preparation", "budgeting", "month-end close",
		},
		Skills: []string{
			"attention to detail", "analytical thinking", "integrity", "organization", "communication",
		},
		Tools:          []string{"quickbooks", "excel", "sap", "netsuite"},
		Certifications: []string{"cpa", "cma", "cia"},
		Action:         []string{"reconciled", "audited", "reported", "forecasted", "prepared", "balanced"},
	},
	{
		Name: "Financial Analyst",
		Technical: []string{
			"financial modeling", "valuation", "forecasting", "variance analysis", "excel", "dcf",
			"budgeting", "fp&a", "investment analysis", "sql",
		},
		Skills: []string{
			"analytical thinking", "communication", "attention to detail", "problem solving",
		},
		Tools:          []string{"bloomberg", "tableau", "power bi", "hyperion"},
		Certifications: []string{"cfa", "cpa", "fmva"},
		Action:         []string{"modeled", "forecasted", "analyzed", "valued", "recommended", "evaluated"},
	},
	{
		Name: "Graphic Designer",
		Technical: []string{
			"typography", "branding", "layout", "illustration", "ui design", "visual identity",
			"print design", "color theory", "motion graphics",
		},
		Skills: []string{
			"creativity", "communication", "attention to detail", "time management", "collaboration",
		},
		Tools:          []string{"photoshop", "illustrator", "indesign", "figma", "after effects"},
		Certifications: []string{"adobe certified"},
		Action:         []string{"designed", "illustrated", "conceptualized", "branded", "crafted", "produced"},
	},
	{
		Name: "Customer Service",
		Technical: []string{
			"customer support", "ticketing", "conflict resolution", "crm", "escalation management",
			"customer satisfaction", "product knowledge", "call handling",
		},
		Skills: []string{
			"empathy", "communication", "patience", "active listening", "problem solving",
		},
		Tools:          []string{"zendesk", "freshdesk", "intercom", "salesforce"},
		Certifications: []string{"hdi", "cxpa"},
		Action:         []string{"resolved", "assisted", "supported", "retained", "handled", "de-escalated"},
	},
	{
		Name: "Human Resources",
		Technical: []string{
			"recruiting", "onboarding", "employee relations", "compensation", "benefits administration",
			"performance management", "hris", "talent acquisition", "compliance",
		},
		Skills: []string{
			"communication", "confidentiality", "empathy", "conflict resolution", "organization",
		},
		Tools:          []string{"workday", "bamboohr", "adp", "greenhouse"},
		Certifications: []string{"shrm", "phr", "sphr"},
		Action:         []string{"recruited", "onboarded", "trained", "implemented", "mediated", "retained"},
	},
}
