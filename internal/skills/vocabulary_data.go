package skills

// Category values group technologies that can stand in for one another when
// judging whether an accomplishment is weakly related to a missing skill.
const (
	CategoryLanguage  = "language"
	CategoryFrontend  = "frontend-framework"
	CategoryBackend   = "backend-framework"
	CategoryCloud     = "cloud"
	CategorySQL       = "sql-database"
	CategoryNoSQL     = "nosql-database"
	CategoryContainer = "container"
	CategoryCI        = "ci"
	CategoryIaC       = "iac"
	CategoryML        = "ml"
	CategoryData      = "data"
	CategoryMessaging = "messaging"
	CategoryPractice  = "practice"
	CategorySoft      = "soft"
)

// defaultSkills is the controlled vocabulary used for extraction and matching.
var defaultSkills = []Skill{
	// Languages
	{Name: "Go", Aliases: []string{"golang", "go lang"}, Category: CategoryLanguage, CaseSensitive: true},
	{Name: "Python", Category: CategoryLanguage},
	{Name: "Java", Category: CategoryLanguage},
	{Name: "JavaScript", Aliases: []string{"js", "ecmascript", "es6"}, Category: CategoryLanguage},
	{Name: "TypeScript", Aliases: []string{"ts"}, Family: "JavaScript", Category: CategoryLanguage},
	{Name: "C++", Aliases: []string{"cpp"}, Category: CategoryLanguage},
	{Name: "C#", Aliases: []string{"csharp", "c sharp"}, Category: CategoryLanguage},
	{Name: "C", Category: CategoryLanguage, CaseSensitive: true},
	{Name: "Rust", Category: CategoryLanguage},
	{Name: "Ruby", Category: CategoryLanguage},
	{Name: "PHP", Category: CategoryLanguage},
	{Name: "Kotlin", Category: CategoryLanguage},
	{Name: "Swift", Category: CategoryLanguage},
	{Name: "Scala", Category: CategoryLanguage},
	{Name: "R", Category: CategoryLanguage, CaseSensitive: true},
	{Name: "SQL", Category: CategoryLanguage},
	{Name: "Bash", Aliases: []string{"shell scripting"}, Category: CategoryLanguage},

	// Frameworks
	{Name: "React", Aliases: []string{"react.js", "reactjs"}, Family: "JavaScript", Category: CategoryFrontend},
	{Name: "Next.js", Aliases: []string{"nextjs"}, Family: "React", Category: CategoryFrontend},
	{Name: "Angular", Aliases: []string{"angularjs"}, Family: "JavaScript", Category: CategoryFrontend},
	{Name: "Vue", Aliases: []string{"vue.js", "vuejs"}, Family: "JavaScript", Category: CategoryFrontend},
	{Name: "Node.js", Aliases: []string{"nodejs", "node"}, Family: "JavaScript", Category: CategoryBackend},
	{Name: "Express", Aliases: []string{"express.js", "expressjs"}, Family: "Node.js", Category: CategoryBackend},
	{Name: "Django", Family: "Python", Category: CategoryBackend},
	{Name: "Flask", Family: "Python", Category: CategoryBackend},
	{Name: "FastAPI", Family: "Python", Category: CategoryBackend},
	{Name: "Pandas", Family: "Python", Category: CategoryData},
	{Name: "NumPy", Family: "Python", Category: CategoryData},
	{Name: "Spring", Aliases: []string{"spring framework"}, Family: "Java", Category: CategoryBackend},
	{Name: "Spring Boot", Aliases: []string{"springboot"}, Family: "Spring", Category: CategoryBackend},
	{Name: "Hibernate", Family: "Java", Category: CategoryBackend},
	{Name: "Rails", Aliases: []string{"ruby on rails", "ror"}, Family: "Ruby", Category: CategoryBackend},
	{Name: "Laravel", Family: "PHP", Category: CategoryBackend},
	{Name: ".NET", Aliases: []string{"dotnet", "asp.net", ".net core"}, Family: "C#", Category: CategoryBackend},
	{Name: "GraphQL", Category: CategoryBackend},
	{Name: "REST APIs", Aliases: []string{"restful", "rest api", "rest apis", "restful apis"}, Category: CategoryBackend},
	{Name: "gRPC", Category: CategoryBackend},

	// Cloud
	{Name: "AWS", Aliases: []string{"amazon web services"}, Category: CategoryCloud},
	{Name: "EC2", Family: "AWS", Category: CategoryCloud},
	{Name: "S3", Family: "AWS", Category: CategoryCloud},
	{Name: "Lambda", Aliases: []string{"aws lambda"}, Family: "AWS", Category: CategoryCloud},
	{Name: "EKS", Family: "AWS", Category: CategoryCloud},
	{Name: "CloudFormation", Family: "AWS", Category: CategoryIaC},
	{Name: "Azure", Aliases: []string{"microsoft azure"}, Category: CategoryCloud},
	{Name: "GCP", Aliases: []string{"google cloud", "google cloud platform"}, Category: CategoryCloud},
	{Name: "BigQuery", Family: "GCP", Category: CategoryData},
	{Name: "GKE", Family: "GCP", Category: CategoryCloud},

	// Containers, CI, IaC
	{Name: "Docker", Aliases: []string{"dockerfile"}, Evidence: []string{"containers", "containerized"}, Category: CategoryContainer},
	{Name: "Kubernetes", Aliases: []string{"k8s"}, Category: CategoryContainer},
	{Name: "Helm", Family: "Kubernetes", Category: CategoryContainer},
	{Name: "CI/CD", Aliases: []string{"cicd", "continuous integration", "continuous delivery", "continuous deployment"}, Category: CategoryCI},
	{Name: "Jenkins", Family: "CI/CD", Category: CategoryCI},
	{Name: "GitHub Actions", Family: "CI/CD", Category: CategoryCI},
	{Name: "GitLab CI", Family: "CI/CD", Category: CategoryCI},
	{Name: "Terraform", Family: "Infrastructure as Code", Category: CategoryIaC},
	{Name: "Infrastructure as Code", Aliases: []string{"iac"}, Category: CategoryIaC},
	{Name: "Ansible", Family: "Infrastructure as Code", Category: CategoryIaC},
	{Name: "Linux", Category: CategoryPractice},
	{Name: "Git", Category: CategoryPractice},

	// Data stores
	{Name: "PostgreSQL", Aliases: []string{"postgres", "psql"}, Family: "SQL", Category: CategorySQL},
	{Name: "MySQL", Family: "SQL", Category: CategorySQL},
	{Name: "SQL Server", Aliases: []string{"mssql", "microsoft sql server"}, Family: "SQL", Category: CategorySQL},
	{Name: "Oracle", Family: "SQL", Category: CategorySQL},
	{Name: "MongoDB", Aliases: []string{"mongo"}, Category: CategoryNoSQL},
	{Name: "Redis", Category: CategoryNoSQL},
	{Name: "DynamoDB", Family: "AWS", Category: CategoryNoSQL},
	{Name: "Cassandra", Category: CategoryNoSQL},
	{Name: "Elasticsearch", Aliases: []string{"elastic search", "opensearch"}, Category: CategoryNoSQL},

	// Data and ML
	{Name: "Machine Learning", Aliases: []string{"ml"}, Category: CategoryML},
	{Name: "Deep Learning", Family: "Machine Learning", Category: CategoryML},
	{Name: "TensorFlow", Family: "Machine Learning", Category: CategoryML},
	{Name: "PyTorch", Family: "Machine Learning", Category: CategoryML},
	{Name: "scikit-learn", Aliases: []string{"sklearn"}, Family: "Machine Learning", Category: CategoryML},
	{Name: "Big Data", Category: CategoryData},
	{Name: "Spark", Aliases: []string{"apache spark", "pyspark"}, Family: "Big Data", Category: CategoryData},
	{Name: "Hadoop", Family: "Big Data", Category: CategoryData},
	{Name: "Airflow", Aliases: []string{"apache airflow"}, Category: CategoryData},
	{Name: "Data Analysis", Aliases: []string{"data analytics", "analytics"}, Category: CategoryData},
	{Name: "Kafka", Aliases: []string{"apache kafka"}, Category: CategoryMessaging},
	{Name: "RabbitMQ", Category: CategoryMessaging},

	// Practices
	{Name: "Microservices", Aliases: []string{"microservice", "micro-services", "service-oriented architecture"}, Category: CategoryPractice},
	{Name: "Distributed Systems", Category: CategoryPractice},
	{Name: "System Design", Aliases: []string{"software architecture", "systems design"}, Category: CategoryPractice},
	{Name: "Agile", Aliases: []string{"agile methodologies"}, Family: "Project Management", Category: CategoryPractice},
	{Name: "Scrum", Family: "Agile", Category: CategoryPractice},
	{Name: "Automated Testing", Aliases: []string{"test automation", "unit testing", "tdd"},
		Evidence: []string{"unit tests", "integration tests", "test suite"}, Category: CategoryPractice},
	{Name: "Security", Aliases: []string{"cybersecurity", "application security"}, Category: CategoryPractice},
	{Name: "Observability", Aliases: []string{"monitoring"}, Evidence: []string{"prometheus", "grafana", "datadog"}, Category: CategoryPractice},

	// Soft skills
	{Name: "Leadership", Aliases: []string{"team leadership", "technical leadership"},
		Evidence: []string{"led", "lead", "leading", "headed", "directed", "supervised", "managed a team", "managed team", "team lead", "tech lead"},
		Category: CategorySoft},
	{Name: "Mentoring", Aliases: []string{"mentorship"}, Family: "Leadership",
		Evidence: []string{"mentored", "coached", "onboarded"}, Category: CategorySoft},
	{Name: "Communication", Aliases: []string{"communication skills"},
		Evidence: []string{"presented", "communicated", "stakeholders", "stakeholder"}, Category: CategorySoft},
	{Name: "Collaboration", Aliases: []string{"teamwork"},
		Evidence: []string{"collaborated", "cross-functional", "partnered"}, Category: CategorySoft},
	{Name: "Project Management", Aliases: []string{"program management"},
		Evidence: []string{"roadmap", "delivered on schedule", "managed project", "managed projects"}, Category: CategorySoft},
	{Name: "Problem Solving", Aliases: []string{"problem-solving"},
		Evidence: []string{"troubleshot", "diagnosed", "root cause"}, Category: CategorySoft},
}
