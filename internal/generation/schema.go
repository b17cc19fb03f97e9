package generation

import "github.com/satwik073/Priscus-server/internal/projects/domain"

type fieldSpec struct {
	name, typ, desc string
	required        bool
	pk              bool
	ref             string
}

func entityFields(specs ...fieldSpec) []domain.Field {
	out := make([]domain.Field, 0, len(specs))
	for _, s := range specs {
		constraints := []string{}
		switch {
		case s.pk:
			constraints = append(constraints, "PRIMARY KEY", "NOT NULL")
		case s.required:
			constraints = append(constraints, "NOT NULL")
		}
		if s.name == "email" {
			constraints = []string{"UNIQUE", "NOT NULL"}
		}
		out = append(out, domain.Field{
			Name:         s.name,
			Type:         s.typ,
			Required:     s.required,
			Description:  s.desc,
			Constraints:  constraints,
			IsPrimaryKey: s.pk,
			IsForeignKey: s.ref != "",
			References:   s.ref,
		})
	}
	return out
}

// fallbackSchema is the User/Project/Task diagram used inside the workflow fallback.
func fallbackSchema() domain.SchemaDiagram {
	return domain.SchemaDiagram{
		Entities: []domain.Entity{
			{
				Name: "User",
				Fields: entityFields(
					fieldSpec{name: "id", typ: "uuid", desc: "Unique identifier for user", required: true, pk: true},
					fieldSpec{name: "email", typ: "varchar(255)", desc: "User email address for authentication", required: true},
					fieldSpec{name: "password", typ: "varchar(255)", desc: "Hashed user password", required: true},
					fieldSpec{name: "name", typ: "varchar(255)", desc: "User display name"},
					fieldSpec{name: "profile_picture", typ: "text", desc: "URL to user profile picture"},
					fieldSpec{name: "role", typ: "varchar(50)", desc: "User role (admin, user, guest)"},
					fieldSpec{name: "is_active", typ: "boolean", desc: "Whether user account is active", required: true},
					fieldSpec{name: "created_at", typ: "timestamp", desc: "Account creation timestamp", required: true},
					fieldSpec{name: "updated_at", typ: "timestamp", desc: "Account last update timestamp"},
				),
				Relationships: []domain.EntityRelationship{
					{Target: "Project", Type: domain.OneToMany, Description: "User can have multiple projects", Field: "id"},
				},
				Position: domain.Position{X: 100, Y: 100},
			},
			{
				Name: "Project",
				Fields: entityFields(
					fieldSpec{name: "id", typ: "uuid", desc: "Unique project identifier", required: true, pk: true},
					fieldSpec{name: "title", typ: "varchar(255)", desc: "Project title", required: true},
					fieldSpec{name: "description", typ: "text", desc: "Detailed project description"},
					fieldSpec{name: "user_id", typ: "uuid", desc: "Foreign key to User table", required: true, ref: "User.id"},
					fieldSpec{name: "status", typ: "varchar(50)", desc: "Project status (active, completed, archived, paused)", required: true},
					fieldSpec{name: "priority", typ: "integer", desc: "Project priority level (1-5)"},
					fieldSpec{name: "start_date", typ: "date", desc: "Project start date"},
					fieldSpec{name: "end_date", typ: "date", desc: "Project end date"},
					fieldSpec{name: "created_at", typ: "timestamp", desc: "Project creation timestamp", required: true},
					fieldSpec{name: "updated_at", typ: "timestamp", desc: "Project last update timestamp"},
				),
				Relationships: []domain.EntityRelationship{
					{Target: "User", Type: domain.ManyToOne, Description: "Project belongs to one user", Field: "user_id"},
					{Target: "Task", Type: domain.OneToMany, Description: "Project can have multiple tasks", Field: "id"},
				},
				Position: domain.Position{X: 400, Y: 100},
			},
			{
				Name: "Task",
				Fields: entityFields(
					fieldSpec{name: "id", typ: "uuid", desc: "Unique task identifier", required: true, pk: true},
					fieldSpec{name: "project_id", typ: "uuid", desc: "Foreign key to Project table", required: true, ref: "Project.id"},
					fieldSpec{name: "title", typ: "varchar(255)", desc: "Task title", required: true},
					fieldSpec{name: "description", typ: "text", desc: "Detailed task description"},
					fieldSpec{name: "status", typ: "varchar(50)", desc: "Task status (todo, in_progress, completed, cancelled)", required: true},
					fieldSpec{name: "priority", typ: "integer", desc: "Task priority level (1-5)", required: true},
					fieldSpec{name: "due_date", typ: "date", desc: "Task due date"},
					fieldSpec{name: "estimated_hours", typ: "integer", desc: "Estimated hours to complete task"},
					fieldSpec{name: "assigned_to", typ: "uuid", desc: "User assigned to this task", ref: "User.id"},
					fieldSpec{name: "created_at", typ: "timestamp", desc: "Task creation timestamp", required: true},
					fieldSpec{name: "updated_at", typ: "timestamp", desc: "Task last update timestamp"},
				),
				Relationships: []domain.EntityRelationship{
					{Target: "Project", Type: domain.ManyToOne, Description: "Task belongs to one project", Field: "project_id"},
					{Target: "User", Type: domain.ManyToOne, Description: "Task can be assigned to one user", Field: "assigned_to"},
				},
				Position: domain.Position{X: 700, Y: 100},
			},
		},
		Relationships: []domain.SchemaRelationship{
			{ID: "r1", Source: "User", Target: "Project", Type: domain.OneToMany, Label: "owns", SourceField: "id", TargetField: "user_id"},
			{ID: "r2", Source: "Project", Target: "Task", Type: domain.OneToMany, Label: "contains", SourceField: "id", TargetField: "project_id"},
			{ID: "r3", Source: "User", Target: "Task", Type: domain.OneToMany, Label: "assigned_to", SourceField: "id", TargetField: "assigned_to"},
		},
	}
}

// DatabaseSchema is the sample schema served by the database schema endpoint:
// users owning projects and tasks, plus per-project theme settings and theme purchases.
func DatabaseSchema() domain.SchemaDiagram {
	return domain.SchemaDiagram{
		Entities: []domain.Entity{
			{
				Name: "User",
				Fields: entityFields(
					fieldSpec{name: "id", typ: "uuid", desc: "Unique identifier for the user", required: true, pk: true},
					fieldSpec{name: "email", typ: "varchar(255)", desc: "User's email address", required: true},
					fieldSpec{name: "password", typ: "varchar(255)", desc: "Hashed user password", required: true},
					fieldSpec{name: "name", typ: "varchar(255)", desc: "User display name"},
					fieldSpec{name: "profile_picture", typ: "text", desc: "URL to user profile picture"},
					fieldSpec{name: "role", typ: "varchar(50)", desc: "User role (admin, user, guest)"},
					fieldSpec{name: "is_active", typ: "boolean", desc: "Whether user account is active", required: true},
					fieldSpec{name: "created_at", typ: "timestamp", desc: "Account creation timestamp", required: true},
					fieldSpec{name: "updated_at", typ: "timestamp", desc: "Account last update timestamp"},
				),
				Relationships: []domain.EntityRelationship{
					{Target: "Project", Type: domain.OneToMany, Description: "One user can have many projects", Field: "id"},
					{Target: "ThemePurchase", Type: domain.OneToMany, Description: "User can purchase multiple themes", Field: "id"},
				},
				Position: domain.Position{X: 100, Y: 100},
			},
			{
				Name: "Project",
				Fields: entityFields(
					fieldSpec{name: "id", typ: "uuid", desc: "Unique identifier for the project", required: true, pk: true},
					fieldSpec{name: "name", typ: "varchar(255)", desc: "Name of the project", required: true},
					fieldSpec{name: "description", typ: "text", desc: "Detailed project description"},
					fieldSpec{name: "user_id", typ: "uuid", desc: "Foreign key to the User table", required: true, ref: "User.id"},
					fieldSpec{name: "status", typ: "varchar(50)", desc: "Project status (active, completed, archived)", required: true},
					fieldSpec{name: "priority", typ: "integer", desc: "Project priority level (1-5)"},
					fieldSpec{name: "start_date", typ: "date", desc: "Project start date"},
					fieldSpec{name: "end_date", typ: "date", desc: "Project end date"},
					fieldSpec{name: "created_at", typ: "timestamp", desc: "Project creation timestamp", required: true},
					fieldSpec{name: "updated_at", typ: "timestamp", desc: "Project last update timestamp"},
				),
				Relationships: []domain.EntityRelationship{
					{Target: "User", Type: domain.ManyToOne, Description: "Project belongs to a user", Field: "user_id"},
					{Target: "Task", Type: domain.OneToMany, Description: "Project can have many tasks", Field: "id"},
					{Target: "ThemeSettings", Type: domain.OneToOne, Description: "Project has theme settings", Field: "id"},
				},
				Position: domain.Position{X: 500, Y: 100},
			},
			{
				Name: "Task",
				Fields: entityFields(
					fieldSpec{name: "id", typ: "uuid", desc: "Unique identifier for the task", required: true, pk: true},
					fieldSpec{name: "project_id", typ: "uuid", desc: "Foreign key to Project table", required: true, ref: "Project.id"},
					fieldSpec{name: "title", typ: "varchar(255)", desc: "Task title", required: true},
					fieldSpec{name: "description", typ: "text", desc: "Detailed task description"},
					fieldSpec{name: "status", typ: "varchar(50)", desc: "Task status (todo, in_progress, completed)", required: true},
					fieldSpec{name: "priority", typ: "integer", desc: "Task priority level (1-5)", required: true},
					fieldSpec{name: "due_date", typ: "date", desc: "Task due date"},
					fieldSpec{name: "estimated_hours", typ: "integer", desc: "Estimated hours to complete task"},
					fieldSpec{name: "assigned_to", typ: "uuid", desc: "User assigned to this task", ref: "User.id"},
					fieldSpec{name: "created_at", typ: "timestamp", desc: "Task creation timestamp", required: true},
					fieldSpec{name: "updated_at", typ: "timestamp", desc: "Task last update timestamp"},
				),
				Relationships: []domain.EntityRelationship{
					{Target: "Project", Type: domain.ManyToOne, Description: "Task belongs to a project", Field: "project_id"},
					{Target: "User", Type: domain.ManyToOne, Description: "Task can be assigned to a user", Field: "assigned_to"},
				},
				Position: domain.Position{X: 500, Y: 400},
			},
			{
				Name: "ThemeSettings",
				Fields: entityFields(
					fieldSpec{name: "id", typ: "uuid", desc: "Unique identifier for theme settings", required: true, pk: true},
					fieldSpec{name: "project_id", typ: "uuid", desc: "Foreign key to Project table", required: true, ref: "Project.id"},
					fieldSpec{name: "theme_name", typ: "varchar(100)", desc: "Name of the selected theme", required: true},
					fieldSpec{name: "primary_color", typ: "varchar(7)", desc: "Primary color hex code"},
					fieldSpec{name: "secondary_color", typ: "varchar(7)", desc: "Secondary color hex code"},
					fieldSpec{name: "font_family", typ: "varchar(100)", desc: "Selected font family"},
					fieldSpec{name: "font_size", typ: "integer", desc: "Base font size in pixels"},
					fieldSpec{name: "is_dark_mode", typ: "boolean", desc: "Whether dark mode is enabled", required: true},
					fieldSpec{name: "created_at", typ: "timestamp", desc: "Theme settings creation timestamp", required: true},
					fieldSpec{name: "updated_at", typ: "timestamp", desc: "Theme settings last update timestamp"},
				),
				Relationships: []domain.EntityRelationship{
					{Target: "Project", Type: domain.OneToOne, Description: "Theme settings belong to a project", Field: "project_id"},
				},
				Position: domain.Position{X: 900, Y: 100},
			},
			{
				Name: "ThemePurchase",
				Fields: entityFields(
					fieldSpec{name: "id", typ: "uuid", desc: "Unique identifier for theme purchase", required: true, pk: true},
					fieldSpec{name: "user_id", typ: "uuid", desc: "Foreign key to User table", required: true, ref: "User.id"},
					fieldSpec{name: "theme_name", typ: "varchar(100)", desc: "Name of the purchased theme", required: true},
					fieldSpec{name: "purchase_price", typ: "decimal(10,2)", desc: "Price paid for the theme", required: true},
					fieldSpec{name: "purchase_date", typ: "timestamp", desc: "Date and time of purchase", required: true},
					fieldSpec{name: "payment_method", typ: "varchar(50)", desc: "Payment method used (credit_card, paypal, etc.)"},
					fieldSpec{name: "transaction_id", typ: "varchar(255)", desc: "External transaction ID"},
					fieldSpec{name: "is_active", typ: "boolean", desc: "Whether the purchase is still active", required: true},
					fieldSpec{name: "created_at", typ: "timestamp", desc: "Purchase record creation timestamp", required: true},
				),
				Relationships: []domain.EntityRelationship{
					{Target: "User", Type: domain.ManyToOne, Description: "Theme purchase belongs to a user", Field: "user_id"},
				},
				Position: domain.Position{X: 100, Y: 400},
			},
		},
		Relationships: []domain.SchemaRelationship{
			{ID: "u-p", Source: "User", Target: "Project", Type: domain.OneToMany, Label: "owns", SourceField: "id", TargetField: "user_id"},
			{ID: "p-t", Source: "Project", Target: "Task", Type: domain.OneToMany, Label: "has", SourceField: "id", TargetField: "project_id"},
			{ID: "p-ts", Source: "Project", Target: "ThemeSettings", Type: domain.OneToOne, Label: "has_theme", SourceField: "id", TargetField: "project_id"},
			{ID: "u-tp", Source: "User", Target: "ThemePurchase", Type: domain.OneToMany, Label: "purchases", SourceField: "id", TargetField: "user_id"},
			{ID: "u-t", Source: "User", Target: "Task", Type: domain.OneToMany, Label: "assigned_to", SourceField: "id", TargetField: "assigned_to"},
		},
	}
}
