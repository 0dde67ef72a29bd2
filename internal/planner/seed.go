package planner

import (
	"github.com/content-planner-api/internal/models"
)

func str(s string) *string { return &s }

// FallbackPlans is the fixed dataset pushed into an empty store on
// first load, and rendered directly from memory when that push fails.
// Statuses are left nil so the upsert defaults them to planned without
// clobbering anything a concurrent import may have written.
var FallbackPlans = []models.ArticleUpsert{
	{
		ArticleID:   "CP-001",
		Title:       "What Is Content Planning and Why It Matters",
		Keyword:     "content planning",
		Intent:      "informational",
		Funnel:      "TOFU",
		Category:    "Strategy",
		Description: "Pillar piece introducing the planning workflow and its payoff.",
		Priority:    "High",
		WordCount:   2200,
		Week:        1,
	},
	{
		ArticleID:   "CP-002",
		Title:       "Building a Quarterly Editorial Calendar",
		Keyword:     "editorial calendar",
		Intent:      "informational",
		Funnel:      "TOFU",
		Category:    "Strategy",
		Description: "Step-by-step guide to mapping articles onto a 13-week quarter.",
		Priority:    "High",
		WordCount:   1800,
		Week:        2,
	},
	{
		ArticleID:   "CP-003",
		Title:       "Keyword Research for Small Teams",
		Keyword:     "keyword research",
		Intent:      "informational",
		Funnel:      "TOFU",
		Category:    "SEO",
		Description: "Lightweight research process that fits a two-person team.",
		Priority:    "Medium",
		WordCount:   1500,
		Week:        3,
	},
	{
		ArticleID:   "CP-004",
		Title:       "Search Intent: Matching Content to the Query",
		Keyword:     "search intent",
		Intent:      "informational",
		Funnel:      "TOFU",
		Category:    "SEO",
		Description: "How to classify intent and pick the right format per keyword.",
		Priority:    "Medium",
		WordCount:   1600,
		Week:        5,
	},
	{
		ArticleID:   "CP-005",
		Title:       "Content Planner vs Spreadsheet: An Honest Comparison",
		Keyword:     "content planner tool",
		Intent:      "commercial",
		Funnel:      "MOFU",
		Category:    "Product",
		Description: "Comparison piece aimed at teams outgrowing their sheet.",
		Priority:    "High",
		WordCount:   1400,
		Week:        7,
	},
	{
		ArticleID:   "CP-006",
		Title:       "How We Plan a Quarter of Content in One Afternoon",
		Keyword:     "content planning process",
		Intent:      "informational",
		Funnel:      "MOFU",
		Category:    "Process",
		Description: "Behind-the-scenes walkthrough of our own planning session.",
		Priority:    "Medium",
		WordCount:   1200,
		Week:        9,
		Notes:       str("Needs screenshots from the planning board."),
	},
	{
		ArticleID:   "CP-007",
		Title:       "Measuring Content ROI Without Vanity Metrics",
		Keyword:     "content roi",
		Intent:      "informational",
		Funnel:      "MOFU",
		Category:    "Analytics",
		Description: "Framework for tying articles to pipeline instead of pageviews.",
		Priority:    "Low",
		WordCount:   1700,
		Week:        11,
	},
	{
		ArticleID:   "CP-008",
		Title:       "Getting Started: Your First Content Plan",
		Keyword:     "create content plan",
		Intent:      "transactional",
		Funnel:      "BOFU",
		Category:    "Product",
		Description: "Onboarding-oriented tutorial ending in a filled-out plan.",
		Priority:    "High",
		WordCount:   1100,
		Week:        13,
	},
	{
		ArticleID:   "CP-009",
		Title:       "Repurposing One Pillar Page into Ten Assets",
		Keyword:     "content repurposing",
		Intent:      "informational",
		Funnel:      "TOFU",
		Category:    "Process",
		Description: "Checklist for spinning a pillar into social, email and video.",
		Priority:    "Low",
		WordCount:   1300,
		Week:        14,
	},
	{
		ArticleID:   "CP-010",
		Title:       "Case Study: Doubling Organic Traffic in Two Quarters",
		Keyword:     "content marketing case study",
		Intent:      "commercial",
		Funnel:      "BOFU",
		Category:    "Analytics",
		Description: "Customer story with the numbers behind the headline.",
		Priority:    "Medium",
		WordCount:   2000,
		Week:        16,
	},
}
