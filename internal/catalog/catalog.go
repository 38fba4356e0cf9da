// Package catalog holds the predefined cities, skills and per-skill service
// templates the profile forms offer. These are static facets; the live ones
// (which cities/skills actually have workers) come from the listing engine.
package catalog

var Cities = []string{
	"Delhi", "Mumbai", "Bangalore", "Kolkata", "Chennai",
	"Hyderabad", "Ahmedabad", "Pune", "Jaipur", "Lucknow",
}

var Skills = []string{
	// Healthcare & Medicine
	"Doctor", "Nurse", "Dentist", "Pharmacist", "Surgeon", "Psychiatrist", "Pediatrician",
	"Veterinarian", "Optometrist", "Dietitian", "Paramedic", "Midwife", "Radiologist",

	// Engineering & Technology
	"Software Engineer", "Mechanical Engineer", "Electrical Engineer", "Civil Engineer",
	"Aerospace Engineer", "Biomedical Engineer", "Chemical Engineer", "Data Scientist",
	"AI Specialist", "Robotics Engineer", "Cybersecurity Analyst", "Network Engineer",

	// Business & Finance
	"Accountant", "Financial Analyst", "Investment Banker", "Auditor", "Economist",
	"Stockbroker", "Actuary", "Risk Manager", "Tax Consultant", "Business Analyst",
	"Marketing Manager", "HR Manager", "Supply Chain Manager", "Entrepreneur",

	// Creative & Arts
	"Graphic Designer", "Animator", "Illustrator", "Musician", "Singer", "Actor",
	"Film Director", "Screenwriter", "Photographer", "Painter", "Sculptor",
	"Fashion Designer", "Interior Designer", "Architect", "Game Designer",

	// Education & Academia
	"Teacher", "Professor", "Researcher", "Librarian", "Tutor", "Education Consultant",
	"Curriculum Developer", "School Principal", "Linguist", "Historian",

	// Legal & Law Enforcement
	"Lawyer", "Judge", "Paralegal", "Police Officer", "Detective", "Forensic Scientist",
	"Coroner", "Private Investigator", "Probation Officer", "Immigration Officer",

	// Skilled Trades & Labor
	"Electrician", "Plumber", "Carpenter", "Welder", "Mason", "Blacksmith", "Mechanic",
	"HVAC Technician", "Construction Worker", "Chef", "Baker", "Tailor", "Jeweler",

	// Social Services & Non-Profit
	"Social Worker", "Counselor", "Therapist", "NGO Worker", "Humanitarian Aid Worker",
	"Community Manager", "Rehabilitation Specialist", "Childcare Worker",

	// Science & Research
	"Biologist", "Chemist", "Physicist", "Astronomer", "Geologist", "Meteorologist",
	"Marine Biologist", "Geneticist", "Archaeologist", "Environmental Scientist",

	// Media & Communication
	"Journalist", "Reporter", "Editor", "PR Specialist", "Content Creator", "Copywriter",
	"Translator", "Interpreter", "Broadcaster", "Podcaster", "Voice Actor",

	// Transportation & Logistics
	"Pilot", "Ship Captain", "Truck Driver", "Delivery Driver", "Logistics Manager",
	"Flight Attendant", "Air Traffic Controller", "Railway Engineer", "Taxi Driver",

	// Agriculture & Environment
	"Farmer", "Agricultural Engineer", "Forester", "Fisherman", "Horticulturist",
	"Environmental Consultant", "Wildlife Biologist", "Park Ranger",

	// Government & Public Service
	"Politician", "Diplomat", "Military Officer", "Firefighter", "Postal Worker",
	"Urban Planner", "Public Administrator", "Customs Officer",

	// Sports & Fitness
	"Athlete", "Coach", "Personal Trainer", "Sports Physiotherapist", "Referee",
	"Sports Agent", "Gym Instructor", "Yoga Teacher",

	// Hospitality & Tourism
	"Hotel Manager", "Tour Guide", "Travel Agent", "Event Planner", "Bartender",
	"Waiter/Waitress", "Spa Therapist", "Cruise Director",

	// Religion & Spirituality
	"Priest", "Imam", "Rabbi", "Monk", "Yogi", "Spiritual Counselor", "Meditation Teacher",

	// Domestic & Personal Services
	"Maid", "Housekeeper", "Nanny", "Butler", "Personal Assistant", "Caregiver",
	"Laundry Worker", "Gardener", "Chauffeur", "Security Guard",

	// Miscellaneous & Emerging Fields
	"Ethical Hacker", "Drone Operator", "Cryptocurrency Analyst", "Space Tourism Guide",
	"Virtual Reality Developer", "Sustainability Consultant", "Crisis Manager",
}

// ServiceTemplates suggests services for the trades the original signup form
// supported with checkboxes; other skills take free-form services.
var ServiceTemplates = map[string][]string{
	"Electrician": {"Wiring", "Fan Repair", "Light Installation"},
	"Plumber":     {"Tap Fixing", "Leak Repair", "Bathroom Fitting"},
	"Carpenter":   {"Furniture Making", "Wood Polishing", "Door Fitting"},
}
