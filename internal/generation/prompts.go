package generation

import (
	"strings"

	"github.com/satwik073/Priscus-server/internal/projects/domain"
)

const analysisTemplate = `
Analyze this project idea and provide a comprehensive evaluation:

Project Title: {{TITLE}}
Project Description: {{DESCRIPTION}}

Provide a detailed analysis in the following JSON format:
{
  "score": <overall score from 0-100>,
  "pillars": [
    {
      "name": "Technical Feasibility",
      "score": <score 0-100>,
      "feedback": "<brief feedback>",
      "strengths": ["<strength>"],
      "challenges": ["<challenge>"],
      "riskAssessment": { "level": "<low|medium|high>", "factors": ["<factor>"], "mitigations": ["<mitigation>"] }
    },
    { "name": "Market Viability", "score": <score 0-100>, "feedback": "<brief feedback>" },
    { "name": "User Experience", "score": <score 0-100>, "feedback": "<brief feedback>" },
    { "name": "Scalability", "score": <score 0-100>, "feedback": "<brief feedback>" },
    { "name": "Monetization Potential", "score": <score 0-100>, "feedback": "<brief feedback>" }
  ],
  "advantages": [{ "title": "<advantage>", "description": "<why it matters>", "impact": "<high|medium|low>" }],
  "disadvantages": [{ "title": "<disadvantage>", "description": "<why it matters>", "impact": "<high|medium|low>" }],
  "features": [{ "title": "<suggested feature>", "description": "<what it does>", "priority": "<critical|high|medium|low>", "complexity": "<high|medium|low>" }],
  "recommendations": [{ "title": "<recommendation>", "description": "<details>", "priority": "<critical|high|medium|low>", "implementationSteps": ["<step>"], "timeframe": "<e.g. 2-4 weeks>" }],
  "technicalAnalysis": { "architecture": "<summary>", "stack": ["<technology>"] },
  "marketAnalysis": { "targetAudience": "<summary>", "competitors": ["<competitor>"] },
  "financialAnalysis": { "revenueModel": "<summary>", "estimatedCost": "<range>" }
}

Include all five pillars, 4 advantages, 4 disadvantages, 5 features and 4 recommendations.

Focus on:
- Technical complexity and feasibility
- Market demand and competition
- User experience considerations
- Scalability potential
- Revenue generation possibilities
- Implementation challenges
- Suggested features based on the project scope
- Actionable recommendations for success

Return only valid JSON, no additional text.
`

const kanbanTemplate = `
Based on the project analysis, generate a comprehensive kanban board for this project:

Project Title: {{TITLE}}
Project Description: {{DESCRIPTION}}

Analysis Results:
{{SUMMARY}}
Generate a kanban board in the following JSON format:
{
  "pipelines": [
    { "id": "backlog", "name": "Backlog", "color": "#gray", "description": "<purpose>", "wipLimit": <number>, "policies": ["<policy>"] },
    { "id": "todo", "name": "To Do", "color": "#blue" },
    { "id": "in-progress", "name": "In Progress", "color": "#yellow" },
    { "id": "review", "name": "Review", "color": "#purple" },
    { "id": "done", "name": "Done", "color": "#green" }
  ],
  "tasks": [
    {
      "id": "1",
      "title": "<task title>",
      "description": "<detailed task description>",
      "pipeline": "<pipeline id>",
      "priority": "<critical|high|medium|low>",
      "estimatedHours": <number>,
      "userStory": "As a <user type>, I want <goal> so that <benefit>",
      "labels": ["<label>"],
      "dependencies": ["<task id>"],
      "acceptanceCriteria": ["<criterion>"],
      "subtasks": [{ "id": "1.1", "title": "<subtask>", "completed": false }],
      "storyPoints": <number>,
      "businessValue": "<high|medium|low>",
      "riskLevel": "<high|medium|low>",
      "testStrategy": "<how it is verified>",
      "resources": [{ "title": "<resource>", "url": "<link>", "type": "<doc|video|article>" }]
    }
  ]
}

Rules:
- "priority" must be one of: critical, high, medium, low.
- "pipeline" must be the id of one of the pipelines above.
- Generate 8-12 specific, actionable tasks covering project setup and architecture, core
  feature development, user authentication (if needed), database design, API development,
  frontend implementation, testing and QA, and deployment setup.

Make tasks specific to this project's features and requirements. Return only valid JSON, no additional text.
`

const workflowTemplate = `
Based on the project analysis, generate THREE comprehensive workflow diagrams for this project:

Project Title: {{TITLE}}
Project Description: {{DESCRIPTION}}

Analysis Results:
{{SUMMARY}}
Generate a JSON response with THREE workflow types:
1. TECHNICAL WORKFLOW: development process flow
2. USER WORKFLOW: user journey and interactions
3. SCHEMA DIAGRAM: database tables and relationships

Return in this EXACT JSON format:
{
  "technicalWorkflow": {
    "nodes": [
      {
        "id": "start",
        "type": "input",
        "position": { "x": 50, "y": 200 },
        "data": {
          "label": "Project Initialization",
          "description": "Set up project structure and development environment",
          "details": ["Create repository", "Set up CI/CD"],
          "technologies": ["Git", "Docker"],
          "estimatedTime": "2-3 days",
          "dependencies": [],
          "deliverables": ["<deliverable>"],
          "risks": ["<risk>"],
          "mitigations": ["<mitigation>"],
          "acceptanceCriteria": ["<criterion>"]
        }
      }
    ],
    "edges": [
      { "id": "e1", "source": "start", "target": "planning", "label": "Setup Complete", "type": "success", "condition": "<optional>" }
    ]
  },
  "userWorkflow": {
    "nodes": [
      {
        "id": "landing",
        "type": "input",
        "position": { "x": 50, "y": 200 },
        "data": {
          "label": "User Lands on Platform",
          "description": "User discovers and accesses the platform",
          "userActions": ["Visit website"],
          "systemResponses": ["Show landing page"],
          "painPoints": ["Slow loading"],
          "successMetrics": ["Page views"],
          "persona": "<persona>",
          "needs": ["<need>"],
          "emotionalState": "<state>",
          "conversionGoals": ["<goal>"],
          "accessibility": ["<consideration>"],
          "designNotes": ["<note>"]
        }
      }
    ],
    "edges": [
      { "id": "e1", "source": "landing", "target": "signup", "label": "User Interested", "condition": "User clicks signup", "frequency": "<how often>", "fallbackPath": "<node id>" }
    ]
  },
  "schemaDiagram": {
    "entities": [
      {
        "name": "User",
        "fields": [
          { "name": "id", "type": "uuid", "required": true, "description": "Unique identifier for user", "constraints": ["PRIMARY KEY", "NOT NULL"], "isPrimaryKey": true, "isForeignKey": false },
          { "name": "email", "type": "varchar(255)", "required": true, "description": "User email address", "constraints": ["UNIQUE", "NOT NULL"] }
        ],
        "relationships": [
          { "target": "Project", "type": "ONE_TO_MANY", "description": "User can have multiple projects", "field": "id" }
        ],
        "position": { "x": 100, "y": 100 }
      }
    ],
    "relationships": [
      { "id": "r1", "source": "User", "target": "Project", "type": "ONE_TO_MANY", "label": "owns", "sourceField": "id", "targetField": "user_id" }
    ]
  }
}

REQUIREMENTS:

TECHNICAL WORKFLOW:
- Include 8-12 detailed development phases.
- Each node must have: label, description, details[], technologies[], estimatedTime, dependencies[].
- Node "type" must be one of: input, output, default, decision, process.
- Edge "type" must be one of: success, error, conditional, parallel.
- Cover: Planning, Architecture, Development, Testing, Deployment, Monitoring, Maintenance.

USER WORKFLOW:
- Include 6-10 user journey steps.
- Each node must have: label, description, userActions[], systemResponses[], painPoints[], successMetrics[].
- Node "type" must be one of: input, output, default, decision, process.
- Cover: Discovery, Onboarding, Core Usage, Support, Retention. Include conditional edges with conditions.

SCHEMA DIAGRAM:
- Generate 4-8 entities based on the specific project requirements.
- Each field has: name, type, required, description, constraints, isPrimaryKey, isForeignKey, references.
- Relationship "type" must be one of: ONE_TO_ONE, ONE_TO_MANY, MANY_TO_ONE, MANY_TO_MANY.
- Position entities logically (x: 50-800, y: 50-600).
- Use realistic field types: uuid, varchar(255), text, integer, boolean, timestamp, date.
- Use constraints: PRIMARY KEY, FOREIGN KEY, UNIQUE, NOT NULL.

Make everything specific to this project type and requirements. Return only valid JSON, no additional text.
`

func render(tmpl, title, description, summary string) string {
	return strings.NewReplacer(
		"{{TITLE}}", title,
		"{{DESCRIPTION}}", description,
		"{{SUMMARY}}", summary,
	).Replace(tmpl)
}

func analysisPrompt(title, description string) string {
	return render(analysisTemplate, title, description, "")
}

func kanbanPrompt(a *domain.ProjectAnalysis, title, description string) string {
	return render(kanbanTemplate, title, description, summarize(a, false))
}

func workflowPrompt(a *domain.ProjectAnalysis, title, description string) string {
	return render(workflowTemplate, title, description, summarize(a, true))
}
