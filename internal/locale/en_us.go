package locale

var enUS = Table{
	Name: "en_US",

	FirstNames: []string{
		"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
		"Linda", "David", "Elizabeth", "William", "Barbara", "Richard",
		"Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen",
		"Christopher", "Lisa", "Daniel", "Nancy", "Matthew", "Betty",
		"Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
		"Steven", "Kimberly", "Paul", "Emily", "Andrew", "Donna", "Joshua",
		"Michelle", "Kenneth", "Carol", "Kevin", "Amanda", "Brian",
		"Dorothy", "George", "Melissa", "Timothy", "Deborah", "Ronald",
		"Stephanie", "Edward", "Rebecca", "Jason", "Sharon", "Jeffrey",
		"Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy",
		"Nicholas", "Angela", "Eric", "Shirley", "Jonathan", "Anna",
		"Stephen", "Brenda", "Larry", "Pamela", "Justin", "Emma", "Scott",
		"Nicole", "Brandon", "Helen",
	},

	LastNames: []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
		"Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez",
		"Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore",
		"Jackson", "Martin", "Lee", "Perez", "Thompson", "White", "Harris",
		"Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
		"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen",
		"Hill", "Flores", "Green", "Adams", "Nelson", "Baker", "Hall",
		"Rivera", "Campbell", "Mitchell", "Carter", "Roberts", "Gomez",
		"Phillips", "Evans", "Turner", "Diaz", "Parker", "Cruz", "Edwards",
		"Collins", "Reyes", "Stewart", "Morris", "Morales", "Murphy",
		"Cook", "Rogers", "Gutierrez", "Ortiz", "Morgan", "Cooper",
		"Peterson", "Bailey", "Reed", "Kelly", "Howard", "Ramos", "Kim",
		"Cox", "Ward", "Richardson",
	},

	Cities: []string{
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
		"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
		"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
		"San Francisco", "Indianapolis", "Seattle", "Denver", "Washington",
		"Boston", "El Paso", "Nashville", "Detroit", "Oklahoma City",
		"Portland", "Las Vegas", "Memphis", "Louisville", "Baltimore",
		"Milwaukee", "Albuquerque", "Tucson", "Fresno", "Sacramento",
		"Kansas City", "Mesa", "Atlanta", "Omaha", "Colorado Springs",
		"Raleigh", "Miami", "Long Beach", "Virginia Beach", "Oakland",
		"Minneapolis", "Tulsa", "Tampa", "Arlington", "New Orleans",
	},

	States: []string{
		"Alabama", "Alaska", "Arizona", "Arkansas", "California",
		"Colorado", "Connecticut", "Delaware", "Florida", "Georgia",
		"Hawaii", "Idaho", "Illinois", "Indiana", "Iowa", "Kansas",
		"Kentucky", "Louisiana", "Maine", "Maryland", "Massachusetts",
		"Michigan", "Minnesota", "Mississippi", "Missouri", "Montana",
		"Nebraska", "Nevada", "New Hampshire", "New Jersey", "New Mexico",
		"New York", "North Carolina", "North Dakota", "Ohio", "Oklahoma",
		"Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
		"South Dakota", "Tennessee", "Texas", "Utah", "Vermont",
		"Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
	},

	StateAbbrs: []string{
		"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
		"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
		"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
		"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
		"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	},

	Countries: []string{
		"United States", "Canada", "Mexico", "Brazil", "Argentina",
		"United Kingdom", "France", "Germany", "Spain", "Italy",
		"Netherlands", "Belgium", "Switzerland", "Austria", "Poland",
		"Sweden", "Norway", "Denmark", "Finland", "Ireland", "Portugal",
		"Greece", "Japan", "China", "South Korea", "India", "Australia",
		"New Zealand", "South Africa", "Egypt", "Nigeria", "Kenya",
		"Turkey", "Israel", "Saudi Arabia", "United Arab Emirates",
		"Thailand", "Vietnam", "Indonesia", "Philippines", "Malaysia",
		"Singapore", "Chile", "Colombia", "Peru", "Czech Republic",
		"Hungary", "Romania", "Ukraine", "Iceland",
	},

	StreetNames: []string{
		"Main", "Oak", "Pine", "Maple", "Cedar", "Elm", "Washington",
		"Lake", "Hill", "Park", "Walnut", "Spring", "North", "Ridge",
		"Church", "Willow", "Mill", "Sunset", "Railroad", "Jackson",
		"Highland", "Forest", "Meadow", "River", "Chestnut", "Franklin",
		"Jefferson", "Lincoln", "Madison", "Adams",
	},

	StreetSuffixes: []string{
		"Street", "Avenue", "Boulevard", "Drive", "Court", "Lane", "Road",
		"Place", "Terrace", "Way", "Circle", "Trail",
	},

	EmailDomains: []string{
		"example.com", "example.org", "example.net", "mail.com",
		"inbox.com", "post.com",
	},

	FreeEmailDomains: []string{
		"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "aol.com",
		"icloud.com",
	},

	SafeEmailDomains: []string{
		"example.com", "example.org", "example.net",
	},

	TLDs: []string{
		"com", "org", "net", "io", "dev", "info", "biz", "co",
	},

	ColorNames: []string{
		"Red", "Green", "Blue", "Yellow", "Orange", "Purple", "Pink",
		"Brown", "Black", "White", "Gray", "Cyan", "Magenta", "Lime",
		"Teal", "Indigo", "Violet", "Maroon", "Navy", "Olive", "Silver",
		"Gold", "Coral", "Salmon", "Turquoise", "Lavender", "Beige",
		"Crimson", "Ivory", "Khaki",
	},

	CompanyPrefixes: []string{
		"Alpha", "Beta", "Apex", "Summit", "Vertex", "Nova", "Stellar",
		"Quantum", "Fusion", "Vortex", "Pinnacle", "Horizon", "Catalyst",
		"Momentum", "Synergy", "Keystone", "Beacon", "Cascade", "Meridian",
		"Frontier", "Atlas", "Orion", "Polaris", "Zenith", "Aurora",
	},

	CompanySuffixes: []string{
		"Inc", "LLC", "Corp", "Group", "Holdings", "Partners", "Labs",
		"Systems", "Solutions", "Industries", "Technologies", "Ventures",
	},

	JobTitles: []string{
		"Software Engineer", "Data Analyst", "Product Manager",
		"Account Executive", "Marketing Coordinator", "Sales Manager",
		"Operations Director", "Financial Analyst", "Graphic Designer",
		"Project Manager", "Business Analyst", "Customer Success Manager",
		"HR Specialist", "DevOps Engineer", "Research Scientist",
		"Technical Writer", "UX Designer", "QA Engineer",
		"Systems Administrator", "Supply Chain Analyst", "Legal Counsel",
		"Content Strategist", "Data Engineer", "Security Analyst",
		"Accountant", "Recruiter", "Office Manager", "Consultant",
		"Civil Engineer", "Electrician", "Pharmacist", "Teacher",
		"Nurse Practitioner", "Architect", "Chef", "Journalist",
		"Photographer", "Translator", "Economist", "Statistician",
	},

	CatchPhraseAdjectives: []string{
		"Innovative", "Scalable", "Seamless", "Robust", "Dynamic",
		"Integrated", "Streamlined", "Adaptive", "Proactive", "Synergistic",
		"Distributed", "Resilient", "Agile", "Holistic", "Turnkey",
		"Frictionless", "Extensible", "Composable", "Intuitive", "Unified",
	},

	CatchPhraseNouns: []string{
		"solution", "platform", "paradigm", "framework", "infrastructure",
		"ecosystem", "architecture", "interface", "workflow", "pipeline",
		"methodology", "synergy", "throughput", "bandwidth", "roadmap",
		"initiative", "deliverable", "capability", "alignment", "leverage",
	},

	LoremWords: []string{
		"lorem", "ipsum", "dolor", "sit", "amet", "consectetur",
		"adipiscing", "elit", "sed", "do", "eiusmod", "tempor",
		"incididunt", "ut", "labore", "et", "dolore", "magna", "aliqua",
		"enim", "ad", "minim", "veniam", "quis", "nostrud", "exercitation",
		"ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
		"consequat", "duis", "aute", "irure", "in", "reprehenderit",
		"voluptate", "velit", "esse", "cillum", "fugiat", "nulla",
		"pariatur", "excepteur", "sint", "occaecat", "cupidatat", "non",
		"proident", "sunt", "culpa", "qui", "officia", "deserunt",
		"mollit", "anim", "id", "est", "laborum",
	},
}
