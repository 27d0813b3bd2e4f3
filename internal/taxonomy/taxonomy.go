// Package taxonomy is the single authority for skill identifiers.
//
// Every component that compares skills — the query extractor, the metadata
// normalizer, the filter builder, the post-filter passes — goes through this
// catalog, so a variant registered here is recognized everywhere at once.
package taxonomy

import (
	"sort"
	"strings"
)

// catalog maps each canonical skill id to its known surface variants.
//
// Variants are matched as substrings of lowercased query/document text, so
// bare one-letter tokens ("c", "r") and the bare "ci"/"cd" abbreviations are
// deliberately absent from the surface lists: they occur inside ordinary
// words and would match almost any text. Normalize still resolves them via
// the reverse map.
var catalog = map[string][]string{
	// Programming languages
	"python":     {"python", "py"},
	"javascript": {"javascript", "js", "ecmascript"},
	"typescript": {"typescript", "ts"},
	"java":       {"java", "j2ee", "j2se"},
	"c#":         {"c#", "csharp", "dotnet", ".net"},
	"c++":        {"c++", "cpp", "c plus plus"},
	"c":          {"c programming", "c language"},
	"go":         {"go", "golang"},
	"rust":       {"rust"},
	"swift":      {"swift"},
	"kotlin":     {"kotlin"},
	"scala":      {"scala"},
	"php":        {"php", "hypertext preprocessor"},
	"ruby":       {"ruby", "ruby on rails", "rails"},
	"perl":       {"perl"},
	"r":          {"r programming", "r language"},
	"matlab":     {"matlab"},
	"julia":      {"julia"},

	// Web technologies
	"html":    {"html", "html5", "hypertext markup language"},
	"css":     {"css", "css3", "cascading style sheets"},
	"node.js": {"node.js", "nodejs", "node js", "node"},
	"react":   {"react", "reactjs", "react.js", "react native"},
	"angular": {"angular", "angularjs", "angular.js"},
	"vue":     {"vue", "vue.js", "vuejs"},
	"svelte":  {"svelte"},
	"next":    {"next.js", "nextjs"},
	"nuxt":    {"nuxt.js", "nuxtjs"},
	"express": {"express", "express.js", "expressjs"},
	"fastify": {"fastify"},
	"koa":     {"koa"},
	"hapi":    {"hapi"},

	// Backend frameworks
	"django":      {"django", "django framework"},
	"flask":       {"flask", "flask framework"},
	"fastapi":     {"fastapi", "fast api"},
	"spring":      {"spring", "spring framework"},
	"spring boot": {"spring boot", "springboot"},
	"laravel":     {"laravel"},
	"symfony":     {"symfony"},
	"codeigniter": {"codeigniter"},
	"asp":         {"asp", "asp.net", "aspnet"},

	// Databases
	"sql":           {"sql", "structured query language"},
	"mysql":         {"mysql", "my sql"},
	"postgresql":    {"postgresql", "postgres", "psql", "postgre sql"},
	"mongodb":       {"mongodb", "mongo", "mongo db"},
	"redis":         {"redis"},
	"elasticsearch": {"elasticsearch", "elastic search", "es"},
	"cassandra":     {"cassandra"},
	"couchdb":       {"couchdb", "couch db"},
	"neo4j":         {"neo4j", "neo 4j"},
	"sqlite":        {"sqlite", "sql lite"},
	"oracle":        {"oracle", "oracle db", "oracle database"},
	"sql server":    {"sql server", "mssql", "ms sql"},

	// Cloud & DevOps
	"aws":        {"aws", "amazon web services", "amazon aws"},
	"azure":      {"azure", "microsoft azure", "azure cloud"},
	"gcp":        {"gcp", "google cloud", "google cloud platform"},
	"docker":     {"docker", "docker container"},
	"kubernetes": {"kubernetes", "k8s", "kube"},
	"terraform":  {"terraform"},
	"ansible":    {"ansible"},
	"jenkins":    {"jenkins"},
	"gitlab":     {"gitlab", "git lab"},
	"github":     {"github", "git hub"},
	"git":        {"git", "git version control"},
	"ci":         {"continuous integration"},
	"cd":         {"continuous deployment", "continuous delivery"},
	"devops":     {"devops", "dev ops", "development operations"},

	// Data science & ML
	"machine learning":        {"machine learning", "ml", "machine learning algorithms"},
	"artificial intelligence": {"artificial intelligence", "ai"},
	"nlp":                     {"nlp", "natural language processing"},
	"deep learning":           {"deep learning", "deep learning algorithms"},
	"neural networks":         {"neural networks", "neural network"},
	"pandas":                  {"pandas", "pandas library"},
	"numpy":                   {"numpy", "numpy library"},
	"scikit-learn":            {"scikit-learn", "scikit learn", "sklearn", "scikit"},
	"tensorflow":              {"tensorflow", "tensor flow", "tf"},
	"pytorch":                 {"pytorch", "py torch", "torch"},
	"keras":                   {"keras"},
	"opencv":                  {"opencv", "open cv"},
	"computer vision":         {"computer vision"},
	"data engineering":        {"data engineering", "data engineer", "etl", "data pipeline"},

	// Frontend & UI
	"redux":        {"redux", "redux toolkit"},
	"mobx":         {"mobx"},
	"tailwind css": {"tailwind css", "tailwind", "tailwindcss"},
	"bootstrap":    {"bootstrap", "bootstrap framework"},
	"material ui":  {"material ui", "material-ui", "mui"},
	"sass":         {"sass", "scss"},
	"less":         {"less"},
	"webpack":      {"webpack"},
	"vite":         {"vite"},
	"rollup":       {"rollup"},
	"babel":        {"babel"},

	// Testing & quality
	"jest":                {"jest", "jest testing"},
	"mocha":               {"mocha"},
	"chai":                {"chai"},
	"cypress":             {"cypress", "cypress testing"},
	"playwright":          {"playwright"},
	"selenium":            {"selenium", "selenium webdriver"},
	"unit testing":        {"unit testing", "unit test", "unit tests"},
	"integration testing": {"integration testing", "integration test", "integration tests"},
	"end to end testing":  {"end to end testing", "e2e testing", "e2e test"},

	// Other technologies
	"graphql":             {"graphql", "graph ql"},
	"rest":                {"rest", "rest api", "restful", "restful api"},
	"soap":                {"soap", "soap api"},
	"microservices":       {"microservices", "micro service", "micro services"},
	"api development":     {"api development", "api dev", "api design"},
	"web development":     {"web development", "web dev", "website development", "website dev"},
	"mobile development":  {"mobile development", "mobile dev", "mobile app development"},
	"desktop development": {"desktop development", "desktop app development"},
	"game development":    {"game development", "game dev", "game programming"},
	"blockchain":          {"blockchain", "block chain", "ethereum", "bitcoin"},
	"cybersecurity":       {"cybersecurity", "cyber security", "information security"},
	"agile":               {"agile", "agile methodology"},
	"scrum":               {"scrum", "scrum methodology"},
	"kanban":              {"kanban", "kanban methodology"},
	"project management":  {"project management", "project manager", "pm"},
	"team leadership":     {"team leadership", "team lead", "technical lead", "tech lead"},

	// Business & soft skills (seen in non-technical CVs)
	"website management":      {"website management", "web management", "site management"},
	"social media marketing":  {"social media marketing", "smm", "social marketing", "digital marketing"},
	"seo":                     {"seo", "search engine optimization", "search engine optimisation"},
	"client dealing":          {"client dealing", "client management", "customer service", "client relations"},
	"communication":           {"communication", "communication skills", "verbal communication", "written communication"},
	"leadership":              {"leadership", "leadership skills", "team management", "supervision"},
	"office management":       {"office management", "administrative management", "office administration"},
	"presentation skills":     {"presentation skills", "presentations", "public speaking"},
	"business correspondence": {"business correspondence", "business communication", "correspondence"},
	"team coordination":       {"team coordination", "team collaboration", "teamwork"},
	"performance management":  {"performance management", "performance evaluation", "feedback"},
	"problem solving":         {"problem solving", "troubleshooting", "issue resolution"},
	"time management":         {"time management", "scheduling", "prioritization"},
	"organization":            {"organization", "organizational skills", "planning"},
	"multitasking":            {"multitasking", "multi-tasking", "handling multiple tasks"},
	"attention to detail":     {"attention to detail", "detail oriented", "meticulous"},
	"analytical thinking":     {"analytical thinking", "analytical skills", "critical thinking"},
	"strategic planning":      {"strategic planning", "strategic thinking"},
	"change management":       {"change management", "change implementation", "adaptation"},
}

// reverse maps every variant — exact and separator-folded — to its canonical id.
var reverse = buildReverse()

// separatorFolder strips the characters that vary between spellings of the
// same skill ("Node.js" / "node js" / "NodeJS").
var separatorFolder = strings.NewReplacer(".", "", " ", "", "-", "", "_", "")

// CanonicalIDs returns all canonical skill ids in sorted order.
func CanonicalIDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsCanonical reports whether id is a registered canonical skill id.
func IsCanonical(id string) bool {
	_, ok := catalog[id]
	return ok
}

// Variants returns the surface variants registered for a canonical id.
// Unknown ids yield {id}, so the result is never empty.
func Variants(id string) []string {
	if vs, ok := catalog[id]; ok {
		out := make([]string, len(vs))
		copy(out, vs)
		return out
	}
	return []string{id}
}

// Normalize maps a raw skill string to its canonical id. Total: lowercases,
// trims, resolves via the reverse map (exact, then separator-folded), and
// falls back to the cleaned input itself when unmapped.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return s
	}
	if id, ok := reverse[s]; ok {
		return id
	}
	if id, ok := reverse[fold(s)]; ok {
		return id
	}
	return s
}

func fold(s string) string {
	return separatorFolder.Replace(s)
}

// buildReverse registers each canonical id and all its variants, exact and
// folded. Iteration is over sorted ids so that any cross-skill variant
// collision resolves deterministically (last registration wins).
func buildReverse() map[string]string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	m := make(map[string]string, len(catalog)*4)
	for _, id := range ids {
		m[id] = id
		m[fold(id)] = id
		for _, v := range catalog[id] {
			m[v] = id
			m[fold(v)] = id
		}
	}
	return m
}
