package decks

import (
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/deck/compose"
	"github.com/matzehuels/stackdeck/pkg/deck/grid"
	"github.com/matzehuels/stackdeck/pkg/theme"
)

// Agentic builds the lightning talk on the agent-assisted workflow.
func Agentic(th theme.Theme) (*deck.Deck, error) {
	return assemble(deck.Meta{
		Title:   "Agentic AI Workflow",
		Subject: "Building a multi-service SaaS platform with an agentic AI workflow",
	}, th,
		agenticCover,
		agenticChallenge,
		agenticVersus,
		agenticCommandCenter,
		agenticTaskSpecs,
		agenticTimeline,
		agenticReview,
		agenticCatches,
		agenticReviewLoop,
		agenticTeam,
		agenticNumbers,
		agenticTakeaways,
	)
}

func agenticCover(p *painter) {
	pal := p.th.Palette
	p.background()
	p.rect(deck.Box(0, 0, deck.Inches(0.15), p.page.Height), pal.Blue)
	p.rect(deck.Box(0, deck.Inches(4.4), p.page.Width, deck.Points(2)), pal.Card)
	p.text("Building a Multi-Service SaaS Platform", deck.InchBox(1, 1.2, 11, 0.9), p.heading(48, pal.Text))
	p.text("With an Agentic AI Workflow", deck.InchBox(1, 2.1, 11, 0.7), p.heading(44, pal.Teal))
	p.text("How an AI coding agent helped architect, plan, and ship Turumba 2.0\nwith a small team in record time",
		deck.InchBox(1, 3.3, 10, 0.9), p.plain(20, pal.Light))
	p.text("Lightning Talk  |  10 Minutes", deck.InchBox(1, 4.8, 6, 0.4), p.plain(16, pal.Muted))
	p.text("February 2026", deck.InchBox(10, 6.5, 2.5, 0.3), flush(p.plain(14, pal.Muted)))
}

var challengeServices = []entry{
	{"Account API", "FastAPI  |  Python 3.11\nUsers, Accounts, Roles,\nContacts, Auth (Cognito)", "blue"},
	{"Messaging API", "FastAPI  |  Python 3.12\nChannels, Messages, Templates,\nGroups, Schedules, Outbox", "green"},
	{"API Gateway", "KrakenD 2.12.1\nGo plugin, 51 endpoints,\nContext enrichment", "orange"},
	{"Web Core", "Next.js 16  |  TypeScript\nTurborepo monorepo,\nReact 19, Tailwind v4", "purple"},
}

func agenticChallenge(p *painter) {
	pal := p.th.Palette
	p.banner("The Challenge", "What we set out to build")
	g := grid.Row(0.5, 1.8, 3.15, len(challengeServices))
	for i, sv := range challengeServices {
		c := p.color(sv.Accent)
		r := g.Rect(i, deck.Inches(2.9), deck.Inches(2.2))
		x, y := r.Left.Inches(), r.Top.Inches()
		p.panel(r, c, 2)
		p.text(sv.Title, deck.InchBox(x+0.2, y+0.2, 2.5, 0.35), centered(p.strong(18, c)))
		p.rect(deck.Box(deck.Inches(x+0.2), deck.Inches(y+0.6), deck.Inches(2.5), deck.Points(1.5)), c)
		p.text(sv.Desc, deck.InchBox(x+0.2, y+0.75, 2.5, 1.2), centered(p.plain(12, pal.Light)))
	}

	p.panel(deck.InchBox(0.5, 4.4, 12.3, 2.6), pal.Teal, 1.5)
	p.block([]deck.Line{
		deck.Styled("Multi-tenant, multi-channel platform", true, pal.Text),
		deck.Styled("SMS, Telegram, WhatsApp, Email, SMPP, Messenger", false, pal.Light),
		deck.Styled("Team of 3-4 developers, tight timeline", false, pal.Light),
		deck.Styled("4 separate repos  |  4 services  |  2 databases  |  1 message broker", false, pal.Light),
	}, deck.InchBox(0.9, 4.6, 6.5, 1.8), deck.BlockStyle{TextStyle: p.plain(16, pal.Text), LineSpacing: 1.6})
	p.text("\"Normally requires weeks of upfront design\nand hundreds of tickets\"",
		deck.InchBox(8, 4.8, 4.5, 1.5), centered(p.heading(20, pal.Orange)))
}

// column is a bordered half-slide panel with a centered heading, a rule
// and a text block.
func (p *painter) column(x float64, heading string, accent deck.Color, body []deck.Line, st deck.BlockStyle) {
	p.panel(deck.InchBox(x, 1.8, 5.8, 5.0), accent, 2)
	p.text(heading, deck.InchBox(x, 1.9, 5.8, 0.5), centered(p.strong(24, accent)))
	p.rect(deck.Box(deck.Inches(x+0.3), deck.Inches(2.5), deck.Inches(5.2), deck.Points(1.5)), accent)
	p.block(body, deck.InchBox(x+0.3, 2.8, 5.2, 3.5), st)
}

func agenticVersus(p *painter) {
	pal := p.th.Palette
	p.banner(`What Makes This "Agentic" and Not Just "Using AI"`, "The distinction that changes everything")
	p.column(0.5, "Using AI", pal.Red, deck.Lines(
		`Ask a chatbot "how do I build a messaging API?"`,
		"Get a generic tutorial response",
		"Copy-paste code snippets",
		"No awareness of your codebase",
		"No awareness of your patterns",
		"Output is conversation, not artifacts",
		"Every session starts from scratch",
	), deck.BlockStyle{TextStyle: p.plain(15, pal.Light), LineSpacing: 1.5, Bulleted: true})
	p.text("VS", deck.InchBox(6.1, 3.8, 1.1, 0.6), centered(p.heading(28, pal.Muted)))
	p.column(7, "Agentic AI Workflow", pal.Green, p.lines([]line{
		{Text: "Context Persistence", Bold: true, Color: "teal"},
		{Text: "  Reads AGENTS.md and knows your full architecture", Color: "light"},
		{Text: "Multi-File Awareness", Bold: true, Color: "teal"},
		{Text: "  References existing models, patterns, and conventions", Color: "light"},
		{Text: "Artifact Production", Bold: true, Color: "teal"},
		{Text: "  Outputs files: specs, docs, status reports", Color: "light"},
		{Text: "Iterative Refinement", Bold: true, Color: "teal"},
		{Text: "  Collaborator, not oracle; adapts to corrections", Color: "light"},
	}), deck.BlockStyle{TextStyle: p.plain(14, pal.Light), LineSpacing: 1.35})
}

func agenticCommandCenter(p *painter) {
	pal := p.th.Palette
	p.banner("The Command Center", "AGENTS.md + architecture docs = the agent's knowledge base")
	p.cards(&compose.RoomyCard,
		cardRow{X: 0.5, Y: 1.8, W: 6, H: 3.0, Title: "AGENTS.md: System Prompt for the Agent", Accent: "blue", TitleSize: 15, BodySize: 12, Body: plain(
			"300+ lines of precise architectural context",
			"Full gateway routing, context enrichment, backend patterns",
			"CRUDController multi-tenancy behaviors (non-obvious!)",
			"Common commands for every service (run, test, lint, migrate)",
			"Code quality standards and CI/CD configuration",
			"Database models and naming conventions",
		)},
		cardRow{X: 6.8, Y: 1.8, W: 6, H: 3.0, Title: "Architecture-First Documentation", Accent: "teal", TitleSize: 15, BodySize: 12, Body: []line{
			{Text: "WHAT_IS_TURUMBA.md: full product specification", Bold: true, Color: "teal"},
			{Text: "TURUMBA_MESSAGING.md: messages, templates, events", Bold: true, Color: "teal"},
			{Text: "TURUMBA_DELIVERY_CHANNELS.md: channels, credentials", Bold: true, Color: "teal"},
			{Text: ""},
			{Text: "Docs serve dual purpose:"},
			{Text: "  Product spec for humans + context for the agent"},
		}},
	)

	p.panel(deck.InchBox(0.5, 5.2, 12.3, 1.8), pal.Orange, 2)
	p.text("The Central Codebase Pattern", deck.InchBox(0.8, 5.35, 5, 0.4), p.strong(18, pal.Orange))
	p.rect(deck.Box(deck.Inches(0.8), deck.Inches(5.8), deck.Inches(11.7), deck.Points(1.5)), pal.Orange)
	p.block(p.lines([]line{
		{Text: "codebase/", Bold: true, Color: "text"},
		{Text: "  ├─ AGENTS.md               ←  Agent reads this automatically", Color: "blue"},
		{Text: "  ├─ docs/                   ←  Architecture specs, task specs", Color: "teal"},
		{Text: "  ├─ turumba_account_api/    ←  Service repo #1", Color: "light"},
		{Text: "  ├─ turumba_messaging_api/  ←  Service repo #2", Color: "light"},
		{Text: "  ├─ turumba_gateway/        ←  Service repo #3", Color: "light"},
		{Text: "  └─ turumba_web_core/       ←  Service repo #4", Color: "light"},
	}), deck.InchBox(0.8, 5.85, 8, 1.3), deck.BlockStyle{TextStyle: p.mono(11, pal.Text), LineSpacing: 1.15})
	p.text("\"The agent does not hallucinate\nfeatures because the features are\nprecisely defined in documents\nit can read.\"",
		deck.InchBox(9.2, 5.85, 3.5, 1.2), centered(light(p.heading(14, pal.Orange))))
}

func agenticTaskSpecs(p *painter) {
	pal := p.th.Palette
	p.banner("AI-Generated Task Specifications", "16 task specs (6 BE + 10 FE), each precise enough for zero clarifying questions")

	p.panel(deck.InchBox(0.5, 1.8, 5.5, 5.0), pal.Blue, 2)
	p.text("Task Spec Format", deck.InchBox(0.8, 1.95, 5, 0.4), p.strong(18, pal.Blue))
	p.rect(deck.Box(deck.Inches(0.8), deck.Inches(2.4), deck.Inches(4.9), deck.Points(1.5)), pal.Blue)
	p.block(p.lines([]line{
		{Text: "Task ID  |  Title  |  Service  |  Assignee", Bold: true, Color: "text"},
		{Text: "────────────────────────────────", Color: "muted"},
		{Text: "Summary  (what and why)", Color: "teal"},
		{Text: "Database model  (columns, types, constraints)", Color: "teal"},
		{Text: "Schema definitions  (create, update, response)", Color: "teal"},
		{Text: "Controller config  (filters, sorts, schema map)", Color: "teal"},
		{Text: "Router endpoints  (methods, paths, req/resp)", Color: "teal"},
		{Text: "Step-by-step implementation checklist", Color: "teal"},
		{Text: "Testing requirements", Color: "teal"},
		{Text: "Definition of done", Color: "teal"},
	}), deck.InchBox(0.8, 2.6, 5, 3.8), deck.BlockStyle{TextStyle: p.mono(13, pal.Text), LineSpacing: 1.4})

	p.cards(&compose.RoomyCard, cardRow{
		X: 6.3, Y: 1.8, W: 6.5, H: 2.2, Title: "Why This Works", Accent: "green", TitleSize: 15, BodySize: 13,
		Body: plain(
			"Exact SQLAlchemy model with every column, type, and index",
			"Pydantic schemas for creation, update, and response",
			"Filter/sort configuration with whitelisted operations",
			"A developer can implement without asking a single question",
		),
	})

	p.panel(deck.InchBox(6.3, 4.3, 6.5, 2.5), pal.Orange, 2)
	p.text("\"The spec IS the clarification\"", deck.InchBox(6.5, 4.5, 6, 0.6), centered(p.heading(24, pal.Orange)))
	p.block(p.lines([]line{
		{Text: "16 task specifications", Bold: true, Color: "text"},
		{Text: "  6 backend  +  10 frontend"},
		{Text: ""},
		{Text: "Produced in a fraction of the time", Bold: true, Color: "text"},
		{Text: "  with far more consistency and detail"},
		{Text: "  than manual ticket writing"},
	}), deck.InchBox(6.8, 5.2, 5.5, 1.4), deck.BlockStyle{TextStyle: p.plain(13, pal.Light), LineSpacing: 1.2})
}

var buildMilestones = []compose.Milestone{
	{Date: "Feb 8", Desc: "Messaging API core\narchitecture + dual\ndatabase setup", Accent: "blue"},
	{Date: "Feb 9", Desc: "Alembic + pre-commit\n+ pytest infrastructure\ncomplete", Accent: "teal"},
	{Date: "Feb 11", Desc: "BE-001 (Messages) +\nBE-002 (Channels)\nCRUD complete & closed", Accent: "green"},
	{Date: "Feb 12", Desc: "BE-003, BE-004, BE-005\n(Templates, Groups,\nSchedules) all closed", Accent: "orange"},
	{Date: "Feb 13", Desc: "Full project audit\n51 gateway endpoints\nconfigured", Accent: "purple"},
}

func agenticTimeline(p *painter) {
	pal := p.th.Palette
	p.banner("From Spec to Implementation", "5 complete CRUD entities in 4 days")
	p.timeline(grid.Row(0.65, 2.2, 2.55, len(buildMilestones)), 2.2, 3.1, buildMilestones)

	p.panel(deck.InchBox(0.5, 5.7, 7.5, 1.3), pal.Green, 2)
	p.text("5 CRUD entities  →  4 days  →  80% test coverage", deck.InchBox(0.8, 5.85, 7, 0.5), p.strong(22, pal.Green))
	p.text("Model + Schema + Controller + Service + Router + Tests for each entity",
		deck.InchBox(0.8, 6.35, 7, 0.4), p.plain(14, pal.Light))
	p.panel(deck.InchBox(8.3, 5.7, 4.5, 1.3), pal.Orange, 2)
	p.text("\"Implementation became an\nexecution task, not a design task\"",
		deck.InchBox(8.3, 5.85, 4.5, 1.0), centered(p.heading(18, pal.Orange)))
}

var reviewPatterns = [][3]string{
	{"1.", "CRUDController Base Class", "All controllers MUST extend it"},
	{"2.", "Multi-Tenant Scoping", "Every query scoped to x-account-ids"},
	{"3.", "Filter/Sort Config", "Whitelist of allowed filters per entity"},
	{"4.", "Schema Conventions", "PATCH: exclude_unset=True, not exclude_none"},
	{"5.", "Async DB Operations", "Never block the event loop"},
	{"6.", "PostgreSQL Models", "sa.Uuid(as_uuid=True), not sa.UUID()"},
	{"7.", "Alembic Migrations", "Column types must match models exactly"},
	{"8.", "Testing Standards", "80% coverage, shared conftest fixtures"},
	{"9.", "Domain-Specific Rules", "Status lifecycles, credential handling"},
	{"10.", "Code Quality", "Ruff, proper error chaining, no hardcoded config"},
}

func agenticReview(p *painter) {
	pal := p.th.Palette
	p.banner("Automated Code Review (Agent Review Action)",
		"Every PR reviewed against the project's architecture, automatically")
	p.cards(&compose.RoomyCard,
		cardRow{X: 0.5, Y: 1.8, W: 5.8, H: 2.0, Title: "agent-review.yml: Auto Review", Accent: "blue", TitleSize: 14, BodySize: 12, Body: plain(
			"Fires on every PR open / update",
			"The agent reads diff + full codebase context",
			"Posts inline comments + structured summary",
			"No human trigger required",
		)},
		cardRow{X: 6.8, Y: 1.8, W: 5.8, H: 2.0, Title: "agent.yml: Interactive @agent Review", Accent: "green", TitleSize: 14, BodySize: 12, Body: plain(
			`Comment "@agent please review" on any PR`,
			"Targeted review responding to specific request",
			"Follow-up questions, re-reviews after fixes",
			"Verify whether a concern has been addressed",
		)},
	)

	p.panel(deck.InchBox(0.5, 4.1, 12.3, 3.1), pal.Purple, 2)
	p.text("The Review Prompt: 120+ Lines of Architecture Context", deck.InchBox(0.8, 4.25, 11, 0.4), p.strong(18, pal.Purple))
	p.rect(deck.Box(deck.Inches(0.8), deck.Inches(4.7), deck.Inches(11.7), deck.Points(1.5)), pal.Purple)
	// Two columns of five, filled top to bottom.
	for i, pt := range reviewPatterns {
		x := 0.8 + float64(i/5)*6.0
		y := 4.9 + float64(i%5)*0.42
		p.text(pt[0], deck.InchBox(x, y, 0.4, 0.3), p.strong(11, pal.Purple))
		p.text(pt[1], deck.InchBox(x+0.4, y, 2.2, 0.3), p.strong(11, pal.Text))
		p.text(pt[2], deck.InchBox(x+2.65, y, 3.1, 0.3), p.plain(10, pal.Light))
	}
	p.text("\"The prompt IS the reviewer's expertise\"", deck.InchBox(3.5, 7.0, 6, 0.4), centered(p.heading(15, pal.Orange)))
}

// catch is one security finding.
type catch struct {
	Title  string
	PR     string
	Desc   string
	Accent string
}

var securityCatches = []catch{
	{"SQL Injection in pg_notify.py", "PR #24  |  Messaging API",
		"f-string SQL construction allows\narbitrary SQL execution.\nCaught in the event infrastructure PR.", "red"},
	{"Auth Bug: Cognito Access Tokens", "PR #52  |  Account API",
		"AWS Cognito access tokens lack \"aud\" claim;\nthey use \"client_id\" instead.\nWould have broken auth for all users.", "orange"},
	{"Multi-Tenant Bypass via Filters", "PR #17  |  Messaging API",
		"User-provided account_id filter could\nreplace system scope filter via\n_merge_filters. Cross-tenant data leak.", "purple"},
	{"Delete Skips Account Filtering", "PR #51  |  Account API",
		"Deletion by ID did not enforce\naccount_id scoping. Any tenant could\ndelete another tenant's records.", "blue"},
}

func agenticCatches(p *painter) {
	pal := p.th.Palette
	p.banner("Real Security Catches", "Actual vulnerabilities caught by automated review in production PRs")
	g := grid.Inches(0.5, 1.8, 6.3, 2.55, 2)
	for i, c := range securityCatches {
		accent := p.color(c.Accent)
		r := g.Rect(i, deck.Inches(5.95), deck.Inches(2.3))
		x, y := r.Left.Inches(), r.Top.Inches()
		p.panel(r, accent, 2)
		p.badge(deck.InchBox(x+0.15, y+0.15, 1.1, 0.3), "CRITICAL", accent)
		p.text(c.Title, deck.InchBox(x+1.4, y+0.15, 4.3, 0.35), p.strong(15, accent))
		p.text(c.PR, deck.InchBox(x+0.2, y+0.55, 5.5, 0.25), p.plain(11, pal.Muted))
		p.rect(deck.Box(deck.Inches(x+0.2), deck.Inches(y+0.85), deck.Inches(5.5), deck.Points(1)), pal.Card)
		p.text(c.Desc, deck.InchBox(x+0.2, y+1.0, 5.5, 1.1), p.plain(12, pal.Light))
	}
	p.callout(deck.InchBox(0.5, 6.9, 12.3, 0.45),
		"These are not theoretical: every catch above was in a real PR heading toward production",
		pal.Green, pal.Green, 13)
}

var reviewLoop = []compose.StepRow{
	{Title: "PR Opened", Desc: "Automated review\nfires immediately", Accent: "blue"},
	{Title: "Dev Fixes", Desc: "Developer addresses\nfirst-wave issues", Accent: "green"},
	{Title: "@agent review", Desc: "Tech lead triggers\ntargeted re-review", Accent: "orange"},
	{Title: "Verify Fixes", Desc: "The agent confirms\nfixes are correct", Accent: "teal"},
	{Title: "Deeper Issues", Desc: "Finds new issues\nmissed in round 1", Accent: "red"},
	{Title: "Dev Fixes Again", Desc: "Developer addresses\nnewly found issues", Accent: "green"},
	{Title: "Final Approve", Desc: "All critical issues\nresolved → Merge", Accent: "purple"},
}

func agenticReviewLoop(p *painter) {
	pal := p.th.Palette
	p.banner("The Multi-Round Review Loop", "7 rounds on one PR; each round goes deeper")
	p.flow(grid.Row(0.2, 1.8, 1.85, len(reviewLoop)), 1.6, 1.8, reviewLoop, compose.StepStacked)
	p.cards(&compose.RoomyCard, cardRow{
		X: 0.5, Y: 4.0, W: 8, H: 3.2, Title: "Case Study: Account API PR #51, 7 Review Rounds", Accent: "blue", TitleSize: 14, BodySize: 11,
		Body: []line{
			{Text: "Round 1:", Bold: true, Color: "blue"},
			{Text: "  A bug-finding bot flags a multi-tenant bypass in person-contact retrieval"},
			{Text: "Round 2:", Bold: true, Color: "blue"},
			{Text: "  The agent's auto-review finds missing type hints"},
			{Text: "Round 3:", Bold: true, Color: "green"},
			{Text: "  Dev fixes both. Tech lead: \"@agent please review\""},
			{Text: "Round 4:", Bold: true, Color: "orange"},
			{Text: "  The agent verifies fixes, finds NEW issue: delete operation skips account filtering"},
			{Text: "Round 5-7:", Bold: true, Color: "purple"},
			{Text: "  Fix → re-review → confirm → APPROVED"},
		},
	})

	p.panel(deck.InchBox(8.8, 4.0, 4, 3.2), pal.Orange, 2)
	p.text("The Pattern", deck.InchBox(9.1, 4.2, 3.4, 0.4), p.strong(18, pal.Orange))
	p.rect(deck.Box(deck.Inches(9.1), deck.Inches(4.65), deck.Inches(3.4), deck.Points(1.5)), pal.Orange)
	p.block(p.lines([]line{
		{Text: "1.", Bold: true, Color: "text"},
		{Text: "Let automated review catch the first wave"},
		{Text: "2.", Bold: true, Color: "text"},
		{Text: "Developer fixes obvious issues"},
		{Text: "3.", Bold: true, Color: "text"},
		{Text: "@agent please review to verify + go deeper"},
		{Text: "4.", Bold: true, Color: "text"},
		{Text: "Repeat until clean"},
	}), deck.InchBox(9.1, 4.85, 3.4, 2.2), deck.BlockStyle{TextStyle: p.plain(11, pal.Light), LineSpacing: 1.1})
}

// role is one member of the team and what they own.
type role struct {
	Title  string
	Duties string
	Accent string
	Badge  string
}

var teamRoles = []role{
	{"Tech Lead + Agent", "Design architecture\nWrite documentation\nGenerate task specs\nAudit progress\nMake merge decisions", "blue", "DESIGN & DECIDE"},
	{"Backend Developer", "Pick up BE specs (BE-001 to BE-006)\nCreate branch, implement spec\nOpen PR, respond to review\nFix issues, request re-review", "green", "EXECUTE BACKEND"},
	{"Frontend Developer", "Pick up FE specs (FE-001 to FE-010)\nSame precision as BE specs\nImplement UI with exact schemas\nConnected to gateway APIs", "orange", "EXECUTE FRONTEND"},
	{"Agent Review Action", "Auto-review every PR on open\nCheck all 10 critical patterns\nPost inline comments + summary\nRe-review on @agent mention", "purple", "REVIEW & VERIFY"},
}

func agenticTeam(p *painter) {
	pal := p.th.Palette
	p.banner("The Team Dynamic", "How roles work with an agentic AI workflow")
	g := grid.Row(0.3, 1.8, 3.25, len(teamRoles))
	for i, rl := range teamRoles {
		c := p.color(rl.Accent)
		r := g.Rect(i, deck.Inches(3), deck.Inches(3.5))
		x, y := r.Left.Inches(), r.Top.Inches()
		p.panel(r, c, 2)
		p.badge(deck.InchBox(x+0.15, y+0.15, 2.7, 0.35), rl.Badge, c)
		p.text(rl.Title, deck.InchBox(x+0.15, y+0.6, 2.7, 0.4), centered(p.strong(14, c)))
		p.rect(deck.Box(deck.Inches(x+0.2), deck.Inches(y+1.05), deck.Inches(2.6), deck.Points(1)), c)
		p.text(rl.Duties, deck.InchBox(x+0.2, y+1.2, 2.6, 2.0), p.plain(11, pal.Light))
	}

	p.panel(deck.InchBox(0.3, 5.6, 6.2, 1.6), pal.Teal, 2)
	p.text("\"Developers never waited for a spec.\nThe specs were ready before they\nfinished the previous task.\"",
		deck.InchBox(0.6, 5.8, 5.8, 1.2), centered(p.heading(17, pal.Teal)))
	p.panel(deck.InchBox(6.8, 5.6, 6.2, 1.6), pal.Orange, 2)
	p.text("\"The most valuable thing a tech lead\nproduces is not code; it is clarity.\"",
		deck.InchBox(7.1, 5.8, 5.6, 1.2), centered(p.heading(17, pal.Orange)))
}

var workflowMetrics = []compose.Metric{
	{Value: "4", Label: "Services", Accent: "blue"},
	{Value: "11", Label: "Backend Entities", Accent: "green"},
	{Value: "51", Label: "Gateway Endpoints", Accent: "teal"},
	{Value: "16", Label: "Task Specs Generated", Accent: "orange"},
	{Value: "30+", Label: "PRs Reviewed by the Agent", Accent: "purple"},
	{Value: "4 Days", Label: "Zero to Functional API", Accent: "green"},
	{Value: "80%", Label: "Test Coverage Gate", Accent: "blue"},
	{Value: "3", Label: "Prompt Iterations", Accent: "orange"},
}

var promptVersions = []entry{
	{"V1: Generic", "code-review plugin.\nSurface-level feedback.", "red"},
	{"V2: Structured", "Custom prompt + auto-review.\nLacked codebase context.", "orange"},
	{"V3: Architecture-Aware", "120+ lines of patterns.\nCatches real vulnerabilities.", "green"},
}

func agenticNumbers(p *painter) {
	pal := p.th.Palette
	p.banner("The Numbers", "Metrics from the Turumba 2.0 agentic workflow")
	p.metrics(grid.Inches(0.4, 1.8, 3.2, 1.6, 4), 2.9, 1.3, workflowMetrics)
	p.callout(deck.InchBox(0.4, 5.0, 12.5, 0.45),
		"Critical Bugs Caught:   SQL Injection  |  Auth Bypass  |  Tenant Isolation Gaps  |  Delete Operation Bypass",
		pal.Red, pal.Red, 14)

	p.panel(deck.InchBox(0.4, 5.7, 12.5, 1.5), pal.Blue, 1.5)
	p.text("Prompt Evolution: 3 Iterations", deck.InchBox(0.7, 5.85, 3, 0.35), p.strong(16, pal.Blue))
	g := grid.Row(0.7, 6.25, 4.1, len(promptVersions))
	for i, v := range promptVersions {
		c := p.color(v.Accent)
		r := g.Rect(i, deck.Inches(3.6), deck.Inches(0.8))
		x, y := r.Left.Inches(), r.Top.Inches()
		if i > 0 {
			p.arrow(deck.InchBox(x-0.45, y+0.15, 0.4, 0.4), compose.Right, 16)
		}
		p.strip(r, c, 1)
		p.text(v.Title, deck.InchBox(x+0.1, y+0.05, 1.5, 0.3), p.strong(12, c))
		p.text(v.Desc, deck.InchBox(x+1.6, y+0.05, 1.9, 0.7), p.plain(10, pal.Light))
	}
}

var takeaways = []compose.StepRow{
	{Title: "Invest heavily in AGENTS.md", Desc: "Quality in = quality out. 300+ lines of architecture context pays dividends on every interaction.", Accent: "blue"},
	{Title: "Documentation is infrastructure, not overhead", Desc: "Architecture docs become the foundation for specs, audits, and status reports. Machine-readable docs compound.", Accent: "teal"},
	{Title: "Specs should be executable, not descriptive", Desc: "Exact column definitions + step-by-step checklist = 2 days writing code, not 2 days figuring out the design.", Accent: "green"},
	{Title: "Review prompts need architecture context", Desc: "Generic prompts produce generic feedback. 120 lines of patterns = real vulnerability catches.", Accent: "orange"},
	{Title: "The agent accelerates production 10x; the thinking is still yours", Desc: "Every spec, every decision, every review goes through human judgment. The agent is a collaborator, not an oracle.", Accent: "purple"},
}

func agenticTakeaways(p *painter) {
	pal := p.th.Palette
	p.background()
	p.rect(deck.Box(0, 0, deck.Inches(0.15), p.page.Height), pal.Blue)
	p.text("Key Takeaways", deck.InchBox(0.6, 0.5, 11, 0.6), p.heading(36, pal.Text))
	p.rect(deck.Box(deck.Inches(0.6), deck.Inches(1.1), deck.Inches(2), deck.Points(3)), pal.Blue)
	p.lessons(grid.Inches(0.6, 1.4, 0, 0.95, 1), 11, takeaways)
	p.rect(deck.Box(deck.Inches(0.6), deck.Inches(6.15), deck.Inches(12), deck.Points(2)), pal.Card)
	p.text("Thank You  |  Questions?", deck.InchBox(0.6, 6.4, 6, 0.6), p.heading(28, pal.Teal))
	p.text("Built with an agentic AI workflow", deck.InchBox(8, 6.55, 5, 0.3), flush(p.plain(14, pal.Muted)))
}
