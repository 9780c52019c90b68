package catalog

import "github.com/bhava-app/bhava/internal/domain"

// ContextTags label what a check-in is about.
var ContextTags = []domain.ContextTag{
	{ID: "school", Label: "School", Icon: "GraduationCap", Description: "Classes, homework, teachers"},
	{ID: "work", Label: "Work", Icon: "Briefcase", Description: "Job, boss, coworkers"},
	{ID: "family", Label: "Family", Icon: "Home", Description: "Parents, siblings, relatives"},
	{ID: "relationships", Label: "Relationships", Icon: "Heart", Description: "Friends, partner, dating"},
	{ID: "immigration", Label: "Immigration stress", Icon: "Globe", Description: "Visa, status, belonging"},
	{ID: "homesick", Label: "Homesick", Icon: "MapPin", Description: "Missing home, food, language"},
	{ID: "cultural-pressure", Label: "Cultural pressure", Icon: "Users", Description: "Expectations, identity, fitting in"},
	{ID: "exams", Label: "Exams", Icon: "FileText", Description: "Tests, grades, performance"},
	{ID: "sleep", Label: "Sleep", Icon: "Moon", Description: "Insomnia, nightmares, exhaustion"},
	{ID: "social-media", Label: "Social media", Icon: "Smartphone", Description: "Comparison, FOMO, cyberbullying"},
	{ID: "money", Label: "Money", Icon: "Wallet", Description: "Bills, expenses, financial stress"},
	{ID: "health", Label: "Health", Icon: "Activity", Description: "Body image, illness, pain"},
	{ID: "loneliness", Label: "Loneliness", Icon: "CloudRain", Description: "No friends nearby, isolation"},
	{ID: "language", Label: "Language barrier", Icon: "MessageCircle", Description: "Not understood, accent, fluency"},
}
