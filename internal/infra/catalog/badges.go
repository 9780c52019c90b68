package catalog

import "github.com/bhava-app/bhava/internal/domain"

// Badges is the fixed badge catalog. Order is display order and the order
// badge states are stored in.
var Badges = []domain.BadgeDef{
	{ID: "first-check", Name: "First Check-In", Description: "Complete your first emotion check-in", Icon: "Star", Requirement: "1 check-in"},
	{ID: "explorer", Name: "Emotion Explorer", Description: "Check in with 3 different emotions", Icon: "Compass", Requirement: "3 unique emotions"},
	{ID: "streak-3", Name: "3-Day Streak", Description: "Check in 3 days in a row", Icon: "Flame", Requirement: "3-day streak"},
	{ID: "streak-7", Name: "Week Warrior", Description: "Check in 7 days in a row", Icon: "Trophy", Requirement: "7-day streak"},
	{ID: "action-hero", Name: "Action Hero", Description: "Complete 10 micro-actions", Icon: "Zap", Requirement: "10 actions"},
	{ID: "all-emotions", Name: "Full Spectrum", Description: "Experience all 6 emotion categories", Icon: "Rainbow", Requirement: "All 6 emotions"},
	{ID: "crisis-calm", Name: "Storm Surfer", Description: "Use crisis mode tools and come through", Icon: "Shield", Requirement: "Use crisis mode"},
	{ID: "social-star", Name: "Social Star", Description: "Complete 5 social micro-actions", Icon: "Heart", Requirement: "5 social actions"},
	{ID: "body-mover", Name: "Body Mover", Description: "Complete 5 body micro-actions", Icon: "Dumbbell", Requirement: "5 body actions"},
	{ID: "points-100", Name: "Century Club", Description: "Earn 100 total points", Icon: "Award", Requirement: "100 points"},
	{ID: "points-500", Name: "High Scorer", Description: "Earn 500 total points", Icon: "Crown", Requirement: "500 points"},
	{ID: "mindful-5", Name: "Mindful Maven", Description: "Complete 5 mindful micro-actions", Icon: "Brain", Requirement: "5 mindful actions"},
}
