package profile

// Default 站点内置的简历数据
var Default = &Profile{
	Name:     "Dikshant Rajput",
	Location: "Ghaziabad, India",
	Email:    "dikshantrajput2007087@gmail.com",
	Phone:    "+91 7982650236",
	GitHub:   "github.com/Dikshant1408",
	LinkedIn: "linkedin.com/in/dikshant-rajput/",
	Summary: "Versatile Software Developer & Innovator specialising in AI-powered applications, " +
		"fintech solutions, and modern web technologies. Currently pursuing MCA at Birla Institute of Technology, Mesra.",
	Education: []Education{
		{
			Degree:     "Master of Computer Applications (MCA)",
			School:     "Birla Institute of Technology, Mesra",
			Location:   "India",
			Period:     "2024–2026",
			Highlights: []string{"Specialising in AI and Machine Learning; active hackathon participant"},
		},
		{
			Degree:     "Bachelor of Computer Applications (BCA)",
			School:     "Symbiosis Institute of Computer Studies and Research",
			Location:   "Pune, India",
			Period:     "2021–2024",
			Highlights: []string{"Strong foundation in programming and software development"},
		},
	},
	Experience: []Experience{
		{
			Title:   "Intern",
			Company: "CoreFinExperts Global Technologies Pvt Ltd",
			Period:  "Jan 2024 – Apr 2024",
			Achievements: []string{
				"Contributed to the go-to-market strategy for DhanXpert (fintech product)",
				"Conducted comprehensive market research and competitor analysis",
				"Facilitated user feedback sessions, boosting customer engagement by 25%",
				"Assisted in crafting business models and pitch decks for product scaling",
			},
		},
	},
	Skills: []SkillGroup{
		{Category: "Programming Languages", Skills: []Skill{
			{"Python", 90}, {"Java", 85}, {"JavaScript", 80}, {"SQL", 75},
		}},
		{Category: "AI & Machine Learning", Skills: []Skill{
			{"Machine Learning", 85}, {"TensorFlow", 80}, {"Data Science", 82}, {"AI", 78}, {"NLP", 75},
		}},
		{Category: "Tools & Frameworks", Skills: []Skill{
			{"Git", 90}, {"Firebase", 80}, {"Django", 75}, {"Flask", 70},
		}},
	},
	SoftSkills: []string{"Problem Solving", "Leadership", "Effective Communication", "Teamwork", "Adaptability"},
	Projects: []Project{
		{
			ID:           "1",
			Title:        "Campus Sahayak",
			Summary:      "Comprehensive campus management system",
			Description:  "A comprehensive campus management system designed to streamline various campus operations and enhance student experience. Built with modern web technologies for scalability and user-friendly interface.",
			Image:        "https://images.unsplash.com/photo-1562774053-701939374585?w=500&h=300&fit=crop",
			Technologies: []string{"Python", "Django", "JavaScript", "HTML/CSS", "SQLite"},
			Category:     "Web App",
			Year:         "2026",
			GitHub:       "https://github.com/Dikshant1408/campus-sahayak",
			Demo:         "https://campus-sahayak.dikshantrajput.dev",
			Featured:     true,
		},
		{
			ID:           "2",
			Title:        "RupeeRadar - AI-Powered Student Budget Guardian",
			Summary:      "AI-powered student budget guardian",
			Description:  "An intelligent budget management application specifically designed for students. Uses AI algorithms to track expenses, provide spending insights, and help students manage their finances effectively.",
			Image:        "https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=500&h=300&fit=crop",
			Technologies: []string{"Python", "Machine Learning", "Flask", "AI", "Data Analytics"},
			Category:     "AI/ML",
			Year:         "2025",
			GitHub:       "https://github.com/Dikshant1408/rupee-radar",
			Featured:     true,
		},
		{
			ID:           "3",
			Title:        "CelestAI - AI-Powered Space Chatbot (The Stellar Gateway Hackathon)",
			Summary:      "AI-powered space chatbot built for The Stellar Gateway Hackathon",
			Description:  "An advanced AI chatbot designed for space exploration and astronomy education. Provides intelligent responses about space missions, celestial bodies, and astronomical phenomena using natural language processing.",
			Image:        "https://images.unsplash.com/photo-1446776653964-20c1d3a81b06?w=500&h=300&fit=crop",
			Technologies: []string{"Python", "NLP", "AI", "Machine Learning", "API Integration"},
			Category:     "AI/ML",
			Year:         "2025",
			GitHub:       "https://github.com/Dikshant1408/celestai",
			Demo:         "https://celestai.dikshantrajput.dev",
			Featured:     true,
		},
		{
			ID:           "4",
			Title:        "AstroMedAI - Space Health and Radiation Risk Assessment",
			Summary:      "Space health and radiation risk assessment",
			Description:  "A sophisticated AI system for assessing health risks and radiation exposure for astronauts and space missions. Provides real-time health monitoring and risk analysis for space exploration.",
			Image:        "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=500&h=300&fit=crop",
			Technologies: []string{"Python", "AI", "Data Science", "Health Analytics", "Machine Learning"},
			Category:     "AI/ML",
			Year:         "2025",
			GitHub:       "https://github.com/Dikshant1408/astromedai",
		},
		{
			ID:           "5",
			Title:        "DhanXpert Market Research & Strategy",
			Summary:      "Fintech go-to-market research",
			Description:  "Contributed to the go-to-market strategy for DhanXpert fintech product during internship at CoreFinExperts. Conducted comprehensive market research, competitor analysis, and user feedback sessions.",
			Image:        "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=500&h=300&fit=crop",
			Technologies: []string{"Market Research", "Data Analysis", "User Experience", "Fintech"},
			Category:     "Research",
			Year:         "2024",
		},
		{
			ID:           "6",
			Title:        "AI Foundations & Machine Learning Projects",
			Summary:      "Collection of ML/AI projects",
			Description:  "Collection of machine learning and AI projects developed during coursework and self-learning. Includes various algorithms, data analysis, and predictive modeling projects.",
			Image:        "https://images.unsplash.com/photo-1555949963-aa79dcee981c?w=500&h=300&fit=crop",
			Technologies: []string{"Python", "TensorFlow", "Machine Learning", "Data Science", "AI"},
			Category:     "AI/ML",
			Year:         "2025",
			GitHub:       "https://github.com/Dikshant1408/ml-projects",
		},
	},
	Achievements: []Achievement{
		{Title: "The Stellar Gateway Hackathon Participant", Date: "2025"},
		{Title: "AI & Machine Learning Specialist", Date: "2024–Present"},
		{Title: "Fintech Innovation Contributor — improved customer engagement by 25%", Date: "2024"},
	},
	Certifications: []Certification{
		{Title: "Artificial Intelligence Foundations: Machine Learning", Issuer: "LinkedIn Learning", Date: "2025"},
		{Title: "JPMorgan Chase & Co — Software Engineering Job Simulation", Issuer: "Forage", Date: "2025"},
		{Title: "Effective Leadership", Issuer: "HP LIFE", Date: "2025"},
	},
}
