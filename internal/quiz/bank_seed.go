package quiz

// Tag constants used by the seed bank. Role tags are the lower-cased role
// titles so a role name selects its questions directly.
const (
	TagFrontend    = "frontend developer"
	TagBackend     = "backend engineer"
	TagDevOps      = "devops engineer"
	TagDataSci     = "data scientist"
	TagProductMgr  = "product manager"
	TagDesigner    = "ui/ux designer"
	TagEngineering = "engineering"
	TagDesign      = "design"
	TagProduct     = "product"
	TagDataScience = "data science"
)

func q(text string, tags ...string) BankItem {
	return BankItem{Text: text, Tags: tags}
}

// seedBank is the offline question bank shipped with the binary.
var seedBank = []BankItem{
	// Frontend
	q("Explain the difference between the virtual DOM and the real DOM, and when re-rendering becomes expensive.", TagFrontend, TagEngineering),
	q("How would you structure state in a React application that shares data between distant components?", TagFrontend, TagEngineering),
	q("What problems do TypeScript generics solve? Give an example from UI code.", TagFrontend, TagEngineering),
	q("Describe how CSS specificity is calculated and how you avoid specificity wars in a large codebase.", TagFrontend, TagEngineering),
	q("How do you make a custom dropdown component accessible to keyboard and screen reader users?", TagFrontend, TagEngineering),
	q("What is the critical rendering path, and which techniques shorten it?", TagFrontend, TagEngineering),
	q("When would you choose server-side rendering over client-side rendering?", TagFrontend, TagEngineering),
	q("Explain the JavaScript event loop, including microtasks and macrotasks.", TagFrontend, TagEngineering),
	q("How do you prevent cross-site scripting in a single page application?", TagFrontend, TagEngineering),
	q("Describe your approach to testing UI components. What do you test and what do you leave out?", TagFrontend, TagEngineering),
	q("How would you diagnose a layout shift reported by Core Web Vitals?", TagFrontend, TagEngineering),
	q("Compare CSS Grid and Flexbox. Give a layout where each is the better fit.", TagFrontend, TagEngineering),

	// Backend
	q("How would you design a REST API for paginating a large, frequently changing collection?", TagBackend, TagEngineering),
	q("Explain database transaction isolation levels and an anomaly each one prevents.", TagBackend, TagEngineering),
	q("When would you add an index to a table, and what does it cost?", TagBackend, TagEngineering),
	q("Describe how you would make a payment endpoint idempotent.", TagBackend, TagEngineering),
	q("What are the trade-offs between a monolith and microservices for a small team?", TagBackend, TagEngineering),
	q("How do you store user passwords safely?", TagBackend, TagEngineering),
	q("Explain how you would introduce a cache in front of a slow service without serving stale data for too long.", TagBackend, TagEngineering),
	q("How would you handle a background job that must run exactly once even if workers crash?", TagBackend, TagEngineering),
	q("What is the N+1 query problem and how do you detect it?", TagBackend, TagEngineering),
	q("Describe how you would version a public API without breaking existing clients.", TagBackend, TagEngineering),
	q("How do you protect an API from abusive clients?", TagBackend, TagEngineering),

	// DevOps
	q("Walk through a CI/CD pipeline you would build for a web service, from commit to production.", TagDevOps, TagEngineering),
	q("What is the difference between a container and a virtual machine?", TagDevOps, TagEngineering),
	q("How does a Kubernetes Deployment perform a rolling update, and how do you roll it back?", TagDevOps, TagEngineering),
	q("Explain infrastructure as code and the benefits of keeping it in version control.", TagDevOps, TagEngineering),
	q("How would you manage secrets for services running in the cloud?", TagDevOps, TagEngineering),
	q("Describe the signals you would alert on for a customer-facing API.", TagDevOps, TagEngineering),
	q("How do you reduce the size and attack surface of a Docker image?", TagDevOps, TagEngineering),
	q("What is a blue-green deployment and when would you prefer a canary release?", TagDevOps, TagEngineering),
	q("A production service is slow only during peak hours. How do you investigate?", TagDevOps, TagEngineering),
	q("How do you design backups so that restores are actually tested?", TagDevOps, TagEngineering),
	q("Explain how autoscaling decisions are made and what can make them misbehave.", TagDevOps, TagEngineering),

	// Data science
	q("Explain the bias-variance trade-off using a model you have worked with.", TagDataSci, TagDataScience),
	q("How do you handle missing values in a dataset before training a model?", TagDataSci, TagDataScience),
	q("Write, in words, a SQL query that finds each customer's most recent order.", TagDataSci, TagDataScience),
	q("What is the difference between precision and recall, and when does each matter more?", TagDataSci, TagDataScience),
	q("How would you design an A/B test for a change to a checkout page?", TagDataSci, TagDataScience),
	q("Describe how cross-validation works and why a single train/test split can mislead.", TagDataSci, TagDataScience),
	q("When would you prefer a gradient boosted tree over a neural network?", TagDataSci, TagDataScience),
	q("How do you detect and deal with data leakage?", TagDataSci, TagDataScience),
	q("Explain a p-value to a non-technical stakeholder.", TagDataSci, TagDataScience),
	q("How would you monitor a model in production for drift?", TagDataSci, TagDataScience),
	q("Describe feature engineering you did that noticeably improved a model.", TagDataSci, TagDataScience),

	// Product management
	q("How do you decide what goes into the next quarter's roadmap?", TagProductMgr, TagProduct),
	q("Describe a product metric you would define for a new onboarding flow and why.", TagProductMgr, TagProduct),
	q("How do you run user research interviews without leading the participant?", TagProductMgr, TagProduct),
	q("Engineering says a feature will take twice as long as planned. What do you do?", TagProductMgr, TagProduct),
	q("How do you write a good user story? Give an example with acceptance criteria.", TagProductMgr, TagProduct),
	q("Explain a prioritization framework you have used and its weaknesses.", TagProductMgr, TagProduct),
	q("How do you say no to a request from an important stakeholder?", TagProductMgr, TagProduct),
	q("Describe how you would validate a new product idea before building it.", TagProductMgr, TagProduct),
	q("What does a healthy sprint review look like to you?", TagProductMgr, TagProduct),
	q("How would you measure whether a launched feature was successful?", TagProductMgr, TagProduct),
	q("Describe a time you used data to change a product decision.", TagProductMgr, TagProduct),

	// Design
	q("Walk through your design process from problem statement to final handoff.", TagDesigner, TagDesign),
	q("How do you decide between a low-fidelity wireframe and a high-fidelity prototype?", TagDesigner, TagDesign),
	q("Describe how you would run a usability test with five participants.", TagDesigner, TagDesign),
	q("What makes a design system useful rather than a burden?", TagDesigner, TagDesign),
	q("How do you design for accessibility from the start?", TagDesigner, TagDesign),
	q("Explain how you handle conflicting feedback from users and stakeholders.", TagDesigner, TagDesign),
	q("How do you use visual hierarchy to guide a user through a dense screen?", TagDesigner, TagDesign),
	q("Describe a design decision you changed after seeing research results.", TagDesigner, TagDesign),
	q("How do you collaborate with engineers to keep a design feasible?", TagDesigner, TagDesign),
	q("What tools do you use for prototyping and why?", TagDesigner, TagDesign),
	q("How would you improve the sign-up flow of an app you use every day?", TagDesigner, TagDesign),
}
