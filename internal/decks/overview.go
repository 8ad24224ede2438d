package decks

import (
	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/deck/compose"
	"github.com/matzehuels/stackdeck/pkg/deck/grid"
	"github.com/matzehuels/stackdeck/pkg/theme"
)

// Overview builds the platform overview deck.
func Overview(th theme.Theme) (*deck.Deck, error) {
	return assemble(deck.Meta{
		Title:   "Turumba 2.0 Overview",
		Subject: "Platform overview, architecture, microservices and evolution",
	}, th,
		overviewCover,
		overviewToday,
		overviewEvolves,
		func(p *painter) { p.section(1, "System Architecture", "Microservices, API gateway, and event-driven design") },
		overviewSystem,
		overviewEndToEnd,
		func(p *painter) { p.section(2, "The Microservices", "Each service's role and responsibilities") },
		overviewGateway,
		overviewAccountAPI,
		overviewMessagingAPI,
		overviewWebCore,
		func(p *painter) { p.section(3, "Under the Hood", "Multi-tenancy and event-driven architecture") },
		overviewUnderTheHood,
		func(p *painter) { p.section(4, "Platform Evolution", "High-scale dispatch and customer support") },
		overviewHighScale,
		overviewConversations,
		overviewTechStack,
		overviewThanks,
	)
}

func overviewCover(p *painter) {
	p.do(func() error {
		return compose.Cover(p.s, p.th, p.page, compose.CoverSpec{
			Title:   "TURUMBA 2.0",
			Tagline: "Multi-Channel Message Automation Platform",
			Blurb:   "Send the right message, to the right person,\nthrough the right channel, at the right time.",
			Footer:  "Platform Overview  |  Architecture  |  Microservices  |  Evolution",
			Date:    "February 2026",
		})
	})
}

var platformFeatures = []compose.Feature{
	{Title: "Accounts & Auth", Desc: "Multi-tenant accounts, users,\nroles, RBAC, AWS Cognito JWT", Accent: "green"},
	{Title: "Contacts & Groups", Desc: "Flexible metadata, custom\nattributes, tags, segmentation", Accent: "teal"},
	{Title: "6 Channel Types", Desc: "SMS, SMPP, Telegram, WhatsApp,\nMessenger, Email, write-only creds", Accent: "blue"},
	{Title: "Template Messages", Desc: "{FIRST_NAME} variables with\n6-source resolution + fallbacks", Accent: "purple"},
	{Title: "Group Messaging", Desc: "Bulk send with per-recipient\npersonalization + progress tracking", Accent: "orange"},
	{Title: "Scheduled Messages", Desc: "One-time & recurring with\ntimezone awareness, pause/resume", Accent: "red"},
	{Title: "Event Infrastructure", Desc: "EventBus + Transactional Outbox\n+ RabbitMQ (zero event loss)", Accent: "teal"},
	{Title: "Frontend Apps", Desc: "Turumba dashboard + Negarit\nNext.js 16, 24 shared UI components", Accent: "blue"},
}

func overviewToday(p *painter) {
	pal := p.th.Palette
	p.banner("What is Turumba Today?", "A working platform with 50+ API endpoints across 4 microservices")
	p.block([]deck.Line{
		deck.Styled("Turumba 2.0 is a multi-tenant message automation platform that enables", true, pal.Text),
		deck.Styled("organizations to automate communication with their contacts across", false, pal.Light),
		deck.Styled("SMS, SMPP, Telegram, WhatsApp, Messenger, and Email.", false, pal.Light),
	}, deck.InchBox(0.6, 1.6, 8, 1), deck.BlockStyle{TextStyle: p.plain(17, pal.Text), LineSpacing: 1.5})
	p.features(grid.Inches(0.5, 3.0, 3.15, 2.15, 4), 2.95, 1.9, platformFeatures)
}

var platformLayers = []compose.Layer{
	{Title: "CURRENT FOUNDATION", Desc: "Accounts, Auth, Contacts, Channels, Messages,\nTemplates, Groups, Schedules, Event Infrastructure", Accent: "green", Status: "BUILT"},
	{Title: "HIGH-SCALE DISPATCH", Desc: "Channel adapter framework, per-channel dispatch workers,\nwebhook receivers, Redis rate limiting, 1M+ messages/day", Accent: "blue", Status: "DESIGNED"},
	{Title: "CONVERSATIONS & SUPPORT", Desc: "Omnichannel inbox, bot-first routing, agent assignment,\nreal-time WebSocket service (turumba_realtime)", Accent: "orange", Status: "DESIGNED"},
	{Title: "AI & ANALYTICS", Desc: "Intent classification, smart replies, translation,\nsentiment detection, dashboards & reporting", Accent: "purple", Status: "PLANNED"},
}

func overviewEvolves(p *painter) {
	p.banner("How Turumba Evolves", "The architecture supports growth without rewrites; each layer builds on what's there")
	// Bottom-up: the foundation sits lowest on the slide.
	p.stack(grid.Inches(0.5, 5.8, 0, -1.45, 1), 10, 1.35, platformLayers)
	p.cards(nil, cardRow{
		X: 10.8, Y: 1.4, W: 2.2, H: 5.7, Title: "Key Principle", Accent: "teal", TitleSize: 13, BodySize: 10,
		Body: plain(
			"Each layer builds on the one below",
			"No rewrites needed",
			"Same DB models, same event pipeline",
			"New workers plug into existing RabbitMQ topology",
			"New models follow the same CRUD pattern",
		),
	})
}

// service is a bordered box with a bold centered heading and centered
// detail lines beneath it.
type service struct {
	X, Y, W, H float64
	Title      string
	Accent     string
	Details    []string
}

func (p *painter) service(sv service) {
	pal := p.th.Palette
	accent := p.color(sv.Accent)
	p.panel(deck.InchBox(sv.X, sv.Y, sv.W, sv.H), accent, 2)
	p.text(sv.Title, deck.InchBox(sv.X, sv.Y+0.05, sv.W, 0.35), centered(p.strong(14, accent)))
	for i, d := range sv.Details {
		c := pal.Muted
		if i == 0 {
			c = pal.Light
		}
		p.text(d, deck.InchBox(sv.X, sv.Y+0.4+float64(i)*0.33, sv.W, 0.3), centered(p.plain(10, c)))
	}
}

func overviewSystem(p *painter) {
	pal := p.th.Palette
	p.banner("System Overview", "4 services, single gateway entry point, Docker networking")

	teal, blue := p.color("teal"), p.color("blue")
	p.panel(deck.InchBox(4.8, 1.6, 3.6, 0.75), teal, 2)
	p.text("Turumba Web Apps  (Next.js 16)", deck.InchBox(4.8, 1.68, 3.6, 0.55), centered(p.strong(14, teal)))
	p.arrow(deck.InchBox(6.2, 2.35, 0.9, 0.3), compose.Down, 20)

	p.panel(deck.InchBox(3, 2.7, 7.3, 1), blue, 2.5)
	p.text("KrakenD API Gateway  (Port 8080)", deck.InchBox(3, 2.75, 7.3, 0.4), centered(p.strong(16, blue)))
	p.text("Context Enrichment  |  Auth Validation  |  Rate Limiting  |  Header Injection",
		deck.InchBox(3, 3.15, 7.3, 0.35), centered(p.plain(10, pal.Muted)))
	for _, x := range []float64{4.5, 7.8} {
		p.arrow(deck.InchBox(x, 3.7, 0.9, 0.3), compose.Down, 20)
	}

	p.service(service{X: 1.2, Y: 4.0, W: 5.2, H: 1.5, Title: "Account API  (FastAPI / Python 3.11)", Accent: "green", Details: []string{
		"Users  |  Accounts  |  Roles  |  Contacts  |  Persons  |  Auth (Cognito)",
		"PostgreSQL  +  MongoDB  +  AWS Cognito",
		"7 Routers  |  18 Service Classes  |  /context/basic endpoint",
	}})
	p.service(service{X: 6.9, Y: 4.0, W: 5.2, H: 1.5, Title: "Messaging API  (FastAPI / Python 3.12)", Accent: "orange", Details: []string{
		"Channels  |  Messages  |  Templates  |  Group Messages  |  Scheduled Messages",
		"PostgreSQL  +  RabbitMQ  (Transactional Outbox)",
		"5 Routers  |  15+ Service Classes  |  Outbox Worker",
	}})
	for _, x := range []float64{2.5, 4.8, 8, 10.2} {
		p.arrow(deck.InchBox(x, 5.5, 0.9, 0.3), compose.Down, 16)
	}

	stores := []struct {
		x      float64
		name   string
		accent string
	}{
		{1.8, "PostgreSQL", "blue"},
		{4.3, "MongoDB", "teal"},
		{7.3, "PostgreSQL", "blue"},
		{9.6, "RabbitMQ", "orange"},
	}
	for _, st := range stores {
		c := p.color(st.accent)
		p.panel(deck.InchBox(st.x, 5.85, 2, 0.6), c, 1.5)
		p.text(st.name, deck.InchBox(st.x, 5.9, 2, 0.5), centered(p.strong(11, c)))
	}
	p.callout(deck.InchBox(1.2, 6.7, 10.9, 0.45),
		"Docker Network: gateway-network  |  All services internal  |  Only gateway exposed on port 8080",
		pal.Muted, pal.Muted, 11)
}

var signupFlow = []compose.StepRow{
	{Title: "User signs up", Desc: "Web app calls\n/v1/auth/register", Accent: "blue"},
	{Title: "Account created", Desc: "Account API creates\nuser in Cognito + DB", Accent: "green"},
	{Title: "User logs in", Desc: "Receives JWT tokens\n(access, id, refresh)", Accent: "teal"},
	{Title: "Context enrichment", Desc: "Gateway calls /context/basic\ninjects x-account-ids", Accent: "orange"},
	{Title: "Manage contacts", Desc: "Create contacts, groups\nwith flexible metadata", Accent: "purple"},
	{Title: "Send message", Desc: "Select channel + template\nAPI renders variables", Accent: "blue"},
	{Title: "Events emitted", Desc: "EventBus + OutboxMiddleware\natomic DB transaction", Accent: "green"},
	{Title: "Background processing", Desc: "Outbox Worker publishes\nto RabbitMQ consumers", Accent: "orange"},
	{Title: "Status tracked", Desc: "All activity recorded\nwith delivery status", Accent: "red"},
}

func overviewEndToEnd(p *painter) {
	p.banner("How It All Works Together", "End-to-end flow from user sign-up to message delivery")
	p.flow(grid.Inches(0.5, 1.7, 4.2, 1.85, 3), 3.9, 1.6, signupFlow, compose.StepInline)
}

var enrichmentFlow = []compose.StepRow{
	{Title: "User Request", Desc: "Hits /v1/accounts\nwith JWT Bearer token", Accent: "blue"},
	{Title: "Context Call", Desc: "Gateway calls\n/v1/context/basic\non Account API", Accent: "teal"},
	{Title: "Header Injection", Desc: "Extracts account_ids\n+ role_ids, injects\nas trusted headers", Accent: "green"},
	{Title: "Anti-Spoofing", Desc: "STRIPS any user-\nprovided x-account-ids\nor x-role-ids", Accent: "red"},
	{Title: "Forward", Desc: "Enriched request\nforwarded to target\nbackend service", Accent: "orange"},
}

func overviewGateway(p *painter) {
	p.banner("turumba_gateway", "KrakenD 2.12.1: single entry point for the entire platform")
	p.text("Context Enrichment Flow", deck.InchBox(0.6, 1.6, 6, 0.35), p.strong(18, p.color("blue")))
	p.flow(grid.Row(0.4, 2.1, 2.55, len(enrichmentFlow)), 2.3, 2.1, enrichmentFlow, compose.StepStacked)
	p.cards(nil,
		cardRow{X: 0.4, Y: 4.5, W: 4, H: 2.7, Title: "Configuration", Accent: "blue", TitleSize: 14, BodySize: 11, Body: plain(
			"Template-based: krakend.tmpl + partials",
			"Go plugin: context-enricher.so",
			"Lua scripts for request/response mods",
			"File composition via FC_ENABLE=1",
		)},
		cardRow{X: 4.7, Y: 4.5, W: 4, H: 2.7, Title: "51 Endpoints", Accent: "green", TitleSize: 14, BodySize: 11, Body: plain(
			"25 Account API routes (auth, users, accounts, roles, contacts)",
			"25 Messaging API routes (channels, messages, templates, groups, schedules)",
			"1 Context route (/v1/context/basic)",
		)},
		cardRow{X: 9, Y: 4.5, W: 4, H: 2.7, Title: "Pattern Matching", Accent: "orange", TitleSize: 14, BodySize: 11, Body: plain(
			`"POST /v1/accounts": exact match`,
			`"* /v1/accounts/*": single wildcard`,
			`"GET /v1/**": double wildcard`,
			"Bypass list for public endpoints",
		)},
	)
}

var accountEntities = []compose.Feature{
	{Title: "Users", Desc: "Registration, auth via\nAWS Cognito, JWT RS256", Accent: "green"},
	{Title: "Accounts", Desc: "Multi-tenant orgs,\nsub-accounts for teams", Accent: "blue"},
	{Title: "Roles", Desc: "Account-specific with\nJSON permissions", Accent: "orange"},
	{Title: "Account Users", Desc: "M:N user-account-role\nmapping table", Accent: "purple"},
	{Title: "Contacts", Desc: "MongoDB, flexible metadata,\ncustom attributes, tags", Accent: "teal"},
	{Title: "Persons", Desc: "MongoDB, person records\nwith attributes", Accent: "muted"},
}

func overviewAccountAPI(p *painter) {
	p.banner("turumba_account_api", "FastAPI / Python 3.11: identity, access, and contact management")
	p.text("Current Entities", deck.InchBox(0.6, 1.6, 4, 0.3), p.strong(16, p.color("green")))
	p.features(grid.Inches(0.5, 2.0, 4.15, 1.5, 3), 3.85, 1.25, accountEntities)
	p.cards(nil,
		cardRow{X: 0.5, Y: 5.1, W: 3.85, H: 2.1, Title: "Architecture", Accent: "green", TitleSize: 13, BodySize: 10, Body: plain(
			"7 Routers, 18 Service Classes",
			"PostgreSQL (relational) + MongoDB (documents)",
			"3 service classes per entity: Creation, Retrieval, Update",
			"/context/basic powers gateway enrichment",
		)},
		cardRow{X: 4.65, Y: 5.1, W: 3.85, H: 2.1, Title: "Auth Stack", Accent: "blue", TitleSize: 13, BodySize: 10, Body: plain(
			"AWS Cognito user pool (JWT RS256)",
			"get_current_user, get_current_user_id",
			"require_role('admin') decorator",
			"Multi-account membership per user",
		)},
		cardRow{X: 8.8, Y: 5.1, W: 4.2, H: 2.1, Title: "Evolution: Agent Preferences", Accent: "orange", TitleSize: 13, BodySize: 10, Body: []line{
			{Text: "AgentPreference model for conversation routing", Bold: true, Color: "orange"},
			{Text: "Available channels, topics, working hours"},
			{Text: "Languages, max concurrent conversations"},
			{Text: "Online/offline toggle, auto-accept, notifications"},
		}},
	)
}

var messagingEntities = []compose.Feature{
	{Title: "Channels", Desc: "6 types, JSONB creds,\nwrite-only security", Accent: "blue"},
	{Title: "Messages", Desc: "Status lifecycle, direction\ntracking, JSONB metadata", Accent: "green"},
	{Title: "Templates", Desc: "{VAR} placeholders,\n6-source resolution", Accent: "purple"},
	{Title: "Group Messages", Desc: "Bulk send, progress\ntracking, auto-template", Accent: "orange"},
	{Title: "Scheduled Msgs", Desc: "One-time / recurring,\ntimezone aware", Accent: "teal"},
	{Title: "Outbox Events", Desc: "Transactional outbox,\npg_notify, retry logic", Accent: "red"},
}

var messagingEvolution = []compose.Feature{
	{Title: "Conversations", Desc: "Omnichannel inbox, status\nopen > bot > assigned\n> pending > resolved", Accent: "orange"},
	{Title: "Contact IDs", Desc: "Same customer on WhatsApp\nAND Telegram maps to\none contact_id", Accent: "teal"},
	{Title: "Canned Replies", Desc: "/shortcode triggers:\n\"/greeting\", \"/refund\"\nwith {{contact_name}}", Accent: "purple"},
	{Title: "Bot Rules", Desc: "Keyword, time-based,\nchannel, fallback;\npriority-ordered", Accent: "red"},
	{Title: "Adapters", Desc: "Twilio, Telegram Bot API,\nWhatsApp Cloud API,\nSMPP", Accent: "blue"},
	{Title: "Dispatch", Desc: "Per-channel consumers:\nmessage.dispatch.sms,\n.telegram, .whatsapp", Accent: "green"},
}

var messageLifecycle = []compose.Stage{
	{Label: "Queued", Accent: "blue"},
	{Label: "Sending", Accent: "orange"},
	{Label: "Sent", Accent: "green"},
	{Label: "Delivered", Accent: "green"},
}

func overviewMessagingAPI(p *painter) {
	pal := p.th.Palette
	p.banner("turumba_messaging_api", "FastAPI / Python 3.12: the messaging core of the platform")
	p.text("Current: 6 Entities (all CRUD implemented)", deck.InchBox(0.6, 1.6, 8, 0.3), p.strong(15, p.color("green")))
	p.features(grid.Row(0.3, 2.0, 2.15, 6), 2.0, 1.3, messagingEntities)
	p.text("Evolution: New Models & Infrastructure", deck.InchBox(0.6, 3.5, 8, 0.3), p.strong(15, p.color("orange")))
	p.features(grid.Row(0.3, 3.9, 2.15, 6), 2.0, 1.65, messagingEvolution)
	p.callout(deck.InchBox(0.3, 5.8, 12.7, 0.5),
		"5 Routers  |  15+ Service Classes  |  PostgreSQL + RabbitMQ  |  Outbox Worker  |  80% test coverage (CI)",
		p.color("blue"), pal.Light, 12)
	p.text("Message Lifecycle:", deck.InchBox(0.5, 6.5, 2, 0.3), p.strong(12, pal.Muted))
	p.chain(grid.Row(2.5, 6.5, 2, len(messageLifecycle)), 1.4, 0.35, messageLifecycle)
	p.text("or  Failed ▶ Retry", deck.InchBox(10.5, 6.5, 2.5, 0.35), p.strong(10, p.color("red")))
}

func overviewWebCore(p *painter) {
	p.banner("turumba_web_core", "Turborepo monorepo: Next.js 16, TypeScript, Tailwind v4")
	p.cards(nil,
		cardRow{X: 0.5, Y: 1.7, W: 4, H: 2.6, Title: "Turumba App  (Port 3600)", Accent: "blue", TitleSize: 14, BodySize: 11, Body: plain(
			"Full-featured message automation dashboard",
			"Account, team, and contact management",
			"Send, schedule, and group messages",
			"Template and channel management",
			"Monitor delivery status and activity",
		)},
		cardRow{X: 4.8, Y: 1.7, W: 4, H: 2.6, Title: "Negarit App  (Port 3500)", Accent: "teal", TitleSize: 14, BodySize: 11, Body: plain(
			"Streamlined messaging-focused app",
			"Send and receive messages only",
			"Schedule messages for future delivery",
			"Message history and delivery status",
			"Lightweight alternative to full dashboard",
		)},
		cardRow{X: 9.1, Y: 1.7, W: 3.9, H: 2.6, Title: "Shared Packages", Accent: "purple", TitleSize: 14, BodySize: 11, Body: plain(
			"@repo/ui: 24 Radix-based components",
			"@repo/eslint-config: shared lint rules",
			"@repo/typescript-config: shared tsconfig",
			"Field composition system for forms",
			"Tailwind v4 with oklch color tokens",
		)},
		cardRow{X: 0.5, Y: 4.6, W: 6.1, H: 2.6, Title: "What's Built", Accent: "green", TitleSize: 14, BodySize: 11, Body: []line{
			{Text: "Auth: Sign in, Sign up, Email verification, TOTP 2FA", Bold: true, Color: "green"},
			{Text: "Server-side auth guard (middleware)", Color: "green"},
			{Text: "Organization management (create, switch, settings)", Color: "green"},
			{Text: "User management within organizations", Color: "green"},
			{Text: "Generic Table Builder with pagination", Color: "green"},
			{Text: "AWS Amplify 6.16 + Cognito integration", Color: "green"},
		}},
		cardRow{X: 6.9, Y: 4.6, W: 6.1, H: 2.6, Title: "Planned: 10 Messaging Pages", Accent: "orange", TitleSize: 14, BodySize: 11, Body: []line{
			{Text: "FE-002/03: Delivery Channels table + create"},
			{Text: "FE-005/06: Templates table + create/edit"},
			{Text: "FE-004/01: Messages table + new message compose"},
			{Text: "FE-007/08: Group messages table + create"},
			{Text: "FE-009/10: Scheduled messages table + create/edit"},
			{Text: "+ Conversation inbox UI (future)", Bold: true, Color: "orange"},
		}},
	)
}

// entry is a titled paragraph inside a bordered panel.
type entry struct {
	Title  string
	Desc   string
	Accent string
}

var tenantIsolation = []entry{
	{"Layer 1: Gateway", "Context-enricher Go plugin resolves user → account.\nInjects x-account-ids, x-role-ids headers.\nSTRIPS any user-provided values (anti-spoofing).", "blue"},
	{"Layer 2: Controller", "Default filter: account_id:eq:{header_value}.\n\"Trusted system filter\" bypasses user validation.\nCannot be overridden by query parameters.", "green"},
	{"Layer 3: Service", "set_header_context(headers) extracts IDs.\nAll DB queries scoped to injected account.\nRole-based access control per operation.", "orange"},
}

var outboxPipeline = []entry{
	{"1. EventBus", "Controller emits domain events.\nIn-memory, request-scoped.\nNo persistence yet.", "blue"},
	{"2. Outbox Middleware", "Flushes events to outbox_events\ntable in SAME DB transaction.\nAtomic: entity + events.", "teal"},
	{"3. db.commit()", "Single commit persists both\nentity changes AND outbox events.\nFail = both rolled back.", "green"},
	{"4. Outbox Worker", "pg_notify wakes worker instantly.\nPublishes to RabbitMQ exchange.\nrouting_key = event_type.", "orange"},
	{"5. Consumers", "Process events: group message\nexpansion, schedule triggers,\ndispatch to channels.", "red"},
}

func overviewUnderTheHood(p *painter) {
	pal := p.th.Palette
	p.banner("Multi-Tenancy & Event Architecture", "")

	p.text("3-Layer Tenant Isolation", deck.InchBox(0.5, 1.6, 6, 0.35), p.strong(16, p.color("blue")))
	g := grid.Inches(0.5, 2.05, 0, 1.7, 1)
	for i, e := range tenantIsolation {
		c := p.color(e.Accent)
		at := g.Position(i)
		x, y := at.X.Inches(), at.Y.Inches()
		p.panel(deck.InchBox(x, y, 6.1, 1.5), c, 1.5)
		p.text(e.Title, deck.InchBox(x+0.2, y+0.1, 3, 0.3), p.strong(13, c))
		p.text(e.Desc, deck.InchBox(x+0.2, y+0.45, 5.5, 0.9), p.plain(10, pal.Light))
	}

	p.text("Transactional Outbox Pipeline", deck.InchBox(6.9, 1.6, 6, 0.35), p.strong(16, p.color("orange")))
	g = grid.Inches(6.9, 2.05, 0, 1.02, 1)
	for i, e := range outboxPipeline {
		c := p.color(e.Accent)
		at := g.Position(i)
		x, y := at.X.Inches(), at.Y.Inches()
		p.panel(deck.InchBox(x, y, 6.1, 0.88), c, 1.5)
		p.text(e.Title, deck.InchBox(x+0.2, y+0.05, 2.2, 0.25), p.strong(11, c))
		p.text(e.Desc, deck.InchBox(x+2.4, y+0.05, 3.5, 0.75), p.plain(9, pal.Light))
	}
}

func overviewHighScale(p *painter) {
	p.banner("High-Scale Messaging Architecture", "Designed for 1M+ messages/day with per-channel scaling")
	p.cards(nil,
		cardRow{X: 0.4, Y: 1.6, W: 4.1, H: 2.8, Title: "Channel Adapter Layer", Accent: "blue", TitleSize: 14, BodySize: 10, Body: plain(
			"Pluggable adapter per channel type + provider",
			"Common interface: send(), verify_credentials(),\n  check_health(), parse_webhook()",
			"SMS: Twilio, Africa's Talking, Vonage adapters",
			"Telegram Bot API, WhatsApp Cloud API",
			"SMPP: persistent TCP to SMSCs",
			"Messenger (Graph API), Email (SMTP)",
			"Adapter registry: channel_type + provider → class",
		)},
		cardRow{X: 4.7, Y: 1.6, W: 4.2, H: 2.8, Title: "Two-Stage Dispatch Pipeline", Accent: "orange", TitleSize: 14, BodySize: 10, Body: []line{
			{Text: "Stage 1: Fan-Out (Group Messages)", Bold: true, Color: "orange"},
			{Text: "Fetches contacts in batches of 1,000"},
			{Text: "Renders template per contact"},
			{Text: "Batch-inserts Message records (queued)"},
			{Text: "Publishes N dispatch events to channel queues"},
			{Text: "Stage 2: Per-Channel Dispatch", Bold: true, Color: "green"},
			{Text: "Each channel type has dedicated RabbitMQ queue"},
			{Text: "Workers load creds from Redis cache"},
			{Text: "Call adapter.send(), update status"},
		}},
		cardRow{X: 9.1, Y: 1.6, W: 3.9, H: 2.8, Title: "Per-Channel Queues", Accent: "teal", TitleSize: 14, BodySize: 10, Body: []line{
			{Text: "message.dispatch.sms"},
			{Text: "message.dispatch.telegram"},
			{Text: "message.dispatch.whatsapp"},
			{Text: "message.dispatch.messenger"},
			{Text: "message.dispatch.email"},
			{Text: "message.dispatch.smpp"},
			{Text: "message.status.update"},
			{Text: "webhook.inbound"},
			{Text: "Independent scaling per channel", Bold: true, Color: "teal"},
		}},
		cardRow{X: 0.4, Y: 4.7, W: 4.1, H: 2.5, Title: "Webhook Receivers", Accent: "red", TitleSize: 14, BodySize: 10, Body: plain(
			"Inbound messages + delivery status from providers",
			"Verify HMAC signature per provider",
			"Return 200 immediately (< 1 second)",
			"Enqueue to RabbitMQ for async processing",
			"Idempotent: deduplicate by provider message ID",
			"Each provider has different HMAC scheme",
		)},
		cardRow{X: 4.7, Y: 4.7, W: 4.2, H: 2.5, Title: "Rate Limiting (3 Levels)", Accent: "purple", TitleSize: 14, BodySize: 10, Body: []line{
			{Text: "Per-channel instance", Bold: true, Color: "blue"},
			{Text: "  Redis token bucket (channel.rate_limit)"},
			{Text: "Per-provider global", Bold: true, Color: "orange"},
			{Text: "  Account-level limits (e.g., Twilio 100 msg/sec)"},
			{Text: "Per-tenant quota", Bold: true, Color: "purple"},
			{Text: "  Daily/monthly caps (free vs. pro tier)"},
		}},
		cardRow{X: 9.1, Y: 4.7, W: 3.9, H: 2.5, Title: "New Infrastructure", Accent: "red", TitleSize: 14, BodySize: 10, Body: []line{
			{Text: "Redis", Bold: true, Color: "red"},
			{Text: "  Rate limiting, credential cache, progress"},
			{Text: "  counters, dedup locks, channel health"},
			{Text: "SMPP Gateway (Jasmin)", Bold: true, Color: "orange"},
			{Text: "  Persistent TCP to SMSCs"},
			{Text: "PostgreSQL Read Replica", Bold: true, Color: "green"},
			{Text: "  Separate read/write paths at scale"},
			{Text: "Table Partitioning", Bold: true, Color: "blue"},
			{Text: "  Messages partitioned by month"},
		}},
	)
}

var inboundFlow = []entry{
	{"Customer\nmessages", "WhatsApp, Telegram,\nSMS, Messenger...", "blue"},
	{"Webhook\nReceiver", "Verify HMAC, return\n200, enqueue", "teal"},
	{"Inbound\nWorker", "Resolve contact,\nfind/create convo", "green"},
	{"Bot\nRouter", "Evaluate rules,\nauto-reply, label", "orange"},
	{"Agent\nRouting", "Filter by availability,\nassign round-robin", "purple"},
	{"Real-Time\nPush", "Socket.IO pushes\nto agent inbox", "pink"},
}

func overviewConversations(p *painter) {
	pal := p.th.Palette
	p.banner("Conversations & Customer Support", "Omnichannel inbox with bot-first routing and real-time push")
	p.cards(nil,
		cardRow{X: 0.4, Y: 1.6, W: 4.1, H: 2.5, Title: "NEW: turumba_realtime", Accent: "pink", TitleSize: 14, BodySize: 10, Body: []line{
			{Text: "5th microservice: Node.js + Socket.IO", Bold: true, Color: "pink"},
			{Text: "Subscribes to RabbitMQ conversation events"},
			{Text: "Pushes to connected browsers via WebSocket"},
			{Text: "Redis adapter for horizontal scaling"},
			{Text: "Presence tracking + typing indicators"},
			{Text: "Two namespaces: /agents, /customers"},
			{Text: "JWT auth on WebSocket handshake"},
		}},
		cardRow{X: 4.7, Y: 1.6, W: 4.2, H: 2.5, Title: "Conversation Model", Accent: "teal", TitleSize: 14, BodySize: 10, Body: []line{
			{Text: "Status lifecycle:", Bold: true, Color: "teal"},
			{Text: "  open → bot → assigned → pending → resolved → closed"},
			{Text: "ContactIdentifier: cross-platform resolution"},
			{Text: "  Same customer on WhatsApp AND Telegram → one contact"},
			{Text: "CannedResponses: /greeting, /refund shortcuts"},
			{Text: "Internal notes (is_private: true) for agents"},
			{Text: "SLA tracking: first_reply_at, resolved_at"},
		}},
		cardRow{X: 9.1, Y: 1.6, W: 3.9, H: 2.5, Title: "Bot-First Routing", Accent: "green", TitleSize: 14, BodySize: 10, Body: []line{
			{Text: "Phase 1: Rule-Based (MVP)", Bold: true, Color: "green"},
			{Text: "  Keyword matching, time-based,\n  channel routing, fallback"},
			{Text: "Phase 2: AI Intent", Bold: true, Color: "orange"},
			{Text: "  LLM classifies intent +\n  confidence threshold"},
			{Text: "Phase 3: Conversational Bot", Bold: true, Color: "purple"},
			{Text: "  Multi-turn, knowledge base,\n  handoff to human"},
		}},
	)

	p.text("Inbound Conversation Flow", deck.InchBox(0.5, 4.3, 6, 0.3), p.strong(15, p.color("orange")))
	g := grid.Row(0.3, 4.75, 2.15, len(inboundFlow))
	p.do(func() error {
		return g.Place(len(inboundFlow), deck.Inches(1.95), deck.Inches(1.65), func(i int, r deck.Rect) error {
			e := inboundFlow[i]
			c := p.color(e.Accent)
			x, y := r.Left.Inches(), r.Top.Inches()
			p.panel(r, c, 1.5)
			p.text(e.Title, deck.InchBox(x+0.1, y+0.1, 1.75, 0.5), centered(p.strong(11, c)))
			p.text(e.Desc, deck.InchBox(x+0.1, y+0.65, 1.75, 0.7), centered(p.plain(9, pal.Light)))
			if i < len(inboundFlow)-1 {
				p.arrow(deck.InchBox(x+1.95, y+0.55, 0.2, 0.35), compose.Right, 12)
			}
			return p.err
		})
	})

	p.callout(deck.InchBox(0.3, 6.6, 12.7, 0.65),
		"Agent Routing:  Filter by is_available + working hours + available_channels + topics + capacity  ▶  Sort by least active + longest idle  ▶  Assign",
		p.color("teal"), pal.Light, 11)
}

// techCategory is one tile of the technology stack grid.
type techCategory struct {
	Name   string
	Accent string
	Items  [][2]string
}

var techStack = []techCategory{
	{"API Gateway", "blue", [][2]string{{"KrakenD 2.12.1", "Go plugins, Lua scripts"}}},
	{"Backend", "green", [][2]string{{"FastAPI", "Python 3.11 / 3.12"}, {"SQLAlchemy", "Async ORM"}, {"Motor", "MongoDB async"}}},
	{"Auth", "orange", [][2]string{{"AWS Cognito", "JWT RS256"}, {"Amplify 6.16", "Frontend SDK"}}},
	{"Databases", "purple", [][2]string{{"PostgreSQL", "Relational data"}, {"MongoDB", "Document data"}, {"RabbitMQ", "Message broker"}}},
	{"Frontend", "teal", [][2]string{{"Next.js 16", "App Router"}, {"TypeScript", "Strict mode"}, {"Tailwind v4", "oklch tokens"}}},
	{"UI / Forms", "red", [][2]string{{"Radix UI", "Accessible primitives"}, {"React Hook Form", "+ Zod validation"}}},
	{"DevOps", "blue", [][2]string{{"Docker", "Compose orchestration"}, {"GitHub Actions", "CI/CD pipelines"}, {"Turborepo", "Monorepo builds"}}},
	{"Planned", "pink", [][2]string{{"Redis", "Rate limiting, cache, presence"}, {"Socket.IO", "Real-time WebSocket"}, {"Jasmin", "SMPP gateway"}}},
}

func overviewTechStack(p *painter) {
	p.banner("Technology Stack", "Current technologies + planned additions")
	g := grid.Inches(0.4, 1.7, 3.2, 2.8, 4)
	for i, cat := range techStack {
		items := make([]line, len(cat.Items))
		for j, it := range cat.Items {
			items[j] = line{Text: it[0] + "  ·  " + it[1], Color: "light"}
		}
		r := g.Rect(i, deck.Inches(2.95), deck.Inches(2.5))
		p.cards(nil, cardRow{
			X: r.Left.Inches(), Y: r.Top.Inches(), W: 2.95, H: 2.5,
			Title: cat.Name, Accent: cat.Accent, TitleSize: 14, BodySize: 11, Body: items,
		})
	}
}

func overviewThanks(p *painter) {
	pal := p.th.Palette
	p.background()
	p.rect(deck.Box(0, 0, deck.Inches(0.15), p.page.Height), pal.Blue)
	p.text("Thank You", deck.InchBox(1, 1.8, 11, 1), p.heading(52, pal.Text))
	p.text("Questions & Discussion", deck.InchBox(1, 3, 11, 0.6), light(p.heading(28, pal.Teal)))
	p.rect(deck.Box(deck.Inches(1), deck.Inches(3.9), deck.Inches(4), deck.Points(2)), pal.Card)
	p.block(deck.Lines(
		"4 microservices today, evolving to 5 (turumba_realtime)",
		"51 API endpoints  |  12 data entities  |  6 messaging channels",
		"Multi-tenant SaaS with 3-layer security",
		"Event-driven architecture (transactional outbox + RabbitMQ)",
		"Designed to scale to 1M+ messages/day",
		"Conversation inbox with bot-first routing on the roadmap",
	), deck.InchBox(1, 4.2, 8, 2.5), deck.BlockStyle{
		TextStyle: p.plain(15, pal.Light), LineSpacing: 1.7, Bulleted: true,
	})
}
