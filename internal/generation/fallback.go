package generation

import "github.com/satwik073/Priscus-server/internal/projects/domain"

// The fallback artifacts are returned when the model cannot produce a usable
// answer. Each call builds a fresh value so callers may mutate it freely.

func fallbackAnalysis() domain.ProjectAnalysis {
	return domain.ProjectAnalysis{
		Score: 75,
		Pillars: []domain.Pillar{
			{Name: "Technical Feasibility", Score: 80, Feedback: "Moderate technical complexity"},
			{Name: "Market Viability", Score: 70, Feedback: "Good market potential"},
			{Name: "User Experience", Score: 75, Feedback: "User-friendly design possible"},
			{Name: "Scalability", Score: 80, Feedback: "Scalable architecture"},
			{Name: "Monetization Potential", Score: 65, Feedback: "Multiple revenue streams possible"},
		},
		Advantages:      domain.Items("Clear value proposition", "Growing market demand", "Scalable technology"),
		Disadvantages:   domain.Items("Competitive market", "Development complexity", "Initial investment required"),
		Features:        domain.Items("User authentication", "Core functionality", "Analytics dashboard", "Mobile support"),
		Recommendations: domain.Items("Start with MVP", "Focus on user research", "Plan for scalability"),
	}
}

func fallbackKanban() domain.KanbanData {
	task := func(id, title, description, priority string, hours float64, story string) domain.Task {
		return domain.Task{
			ID:             id,
			Title:          title,
			Description:    description,
			Pipeline:       "todo",
			Priority:       priority,
			EstimatedHours: hours,
			UserStory:      story,
		}
	}

	return domain.KanbanData{
		Pipelines: []domain.Pipeline{
			{ID: "backlog", Name: "Backlog", Color: "#gray"},
			{ID: "todo", Name: "To Do", Color: "#blue"},
			{ID: "in-progress", Name: "In Progress", Color: "#yellow"},
			{ID: "review", Name: "Review", Color: "#purple"},
			{ID: "done", Name: "Done", Color: "#green"},
		},
		Tasks: []domain.Task{
			task("1", "Project Setup & Architecture", "Set up development environment and define system architecture", domain.PriorityHigh, 16,
				"As a developer, I want to have a solid foundation so that I can build features efficiently"),
			task("2", "User Authentication System", "Implement secure user registration and login system", domain.PriorityHigh, 24,
				"As a user, I want to create an account so that I can access personalized features"),
			task("3", "Core Feature Development", "Build the main functionality based on project requirements", domain.PriorityHigh, 40,
				"As a user, I want to use the core features so that I can achieve my goals"),
			task("4", "UI/UX Implementation", "Create responsive and intuitive user interface", domain.PriorityMedium, 32,
				"As a user, I want an intuitive interface so that I can easily navigate the application"),
			task("5", "Testing & Quality Assurance", "Implement comprehensive testing and bug fixes", domain.PriorityMedium, 20,
				"As a user, I want a reliable application so that I can trust it with my data"),
			task("6", "Database Design", "Design and implement database schema and relationships", domain.PriorityHigh, 12,
				"As a developer, I want a well-structured database so that data is organized efficiently"),
			task("7", "API Development", "Create RESTful API endpoints for frontend communication", domain.PriorityHigh, 28,
				"As a frontend developer, I want API endpoints so that I can fetch and update data"),
			task("8", "Deployment & DevOps", "Set up production environment and deployment pipeline", domain.PriorityMedium, 16,
				"As a developer, I want automated deployment so that I can release features quickly"),
		},
	}
}

func fallbackWorkflow() domain.WorkflowData {
	return domain.WorkflowData{
		TechnicalWorkflow: domain.TechnicalWorkflow{
			Nodes: []domain.TechnicalNode{
				{
					ID: "start", Type: "input", Position: domain.Position{X: 50, Y: 200},
					Data: domain.TechnicalNodeData{
						Label:         "Project Start",
						Description:   "Initial project kickoff and setup",
						Details:       []string{"Initialize repository", "Set up development environment", "Configure tools"},
						Technologies:  []string{"Git", "Node.js", "VS Code"},
						EstimatedTime: "1-2 days",
						Dependencies:  []string{},
					},
				},
				{
					ID: "planning", Type: "default", Position: domain.Position{X: 200, Y: 100},
					Data: domain.TechnicalNodeData{
						Label:         "Planning Phase",
						Description:   "Requirements gathering and architecture design",
						Details:       []string{"Gather requirements", "Design system architecture", "Create technical specifications"},
						Technologies:  []string{"Figma", "Draw.io", "Confluence"},
						EstimatedTime: "3-5 days",
						Dependencies:  []string{"start"},
					},
				},
			},
			Edges: []domain.TechnicalEdge{
				{ID: "e1", Source: "start", Target: "planning", Label: "Setup Complete", Type: "success"},
			},
		},
		UserWorkflow: domain.UserWorkflow{
			Nodes: []domain.UserNode{
				{
					ID: "landing", Type: "input", Position: domain.Position{X: 50, Y: 200},
					Data: domain.UserNodeData{
						Label:           "User Lands on Platform",
						Description:     "User discovers and accesses the platform",
						UserActions:     []string{"Visit website", "Browse features", "Read documentation"},
						SystemResponses: []string{"Show landing page", "Display feature highlights", "Provide demo"},
						PainPoints:      []string{"Slow loading", "Unclear value proposition"},
						SuccessMetrics:  []string{"Page views", "Time on site", "Bounce rate"},
					},
				},
			},
			Edges: []domain.UserEdge{
				{ID: "e1", Source: "landing", Target: "signup", Label: "User Interested", Condition: "User clicks signup"},
			},
		},
		SchemaDiagram: fallbackSchema(),
	}
}
