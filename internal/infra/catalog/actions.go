package catalog

import "github.com/bhava-app/bhava/internal/domain"

// MicroActions maps emotion id and intensity band to suggested actions.
// Sources: CBT, DBT, ACT and culturally-responsive care practices.
var MicroActions = map[string]map[domain.IntensityBand][]domain.MicroAction{
	"joy": {
		domain.BandLow: {
			{ID: "j1", Text: "Write down 3 things you're grateful for right now", Category: domain.CategoryMindful, TimeMinutes: 2, Points: 10, ResearchBasis: "Gratitude journaling (Emmons & McCullough, 2003)"},
			{ID: "j2", Text: "Send a thank-you message to someone who helped you", Category: domain.CategorySocial, TimeMinutes: 3, Points: 15, CulturalNote: "In many cultures, expressing gratitude strengthens community bonds"},
			{ID: "j3", Text: "Do a little victory dance for 30 seconds", Category: domain.CategoryBody, TimeMinutes: 1, Points: 5},
			{ID: "j4", Text: "Draw or doodle what happiness looks like to you", Category: domain.CategoryCreative, TimeMinutes: 5, Points: 15},
		},
		domain.BandMedium: {
			{ID: "j5", Text: "Call or voice-note a friend and share your good news", Category: domain.CategorySocial, TimeMinutes: 5, Points: 20, ResearchBasis: "Capitalization theory - sharing positive events amplifies joy (Gable et al., 2004)"},
			{ID: "j6", Text: "Make a playlist of songs that match this feeling", Category: domain.CategoryCreative, TimeMinutes: 10, Points: 25},
			{ID: "j7", Text: "Cook or eat a food that reminds you of a happy memory", Category: domain.CategoryFun, TimeMinutes: 15, Points: 30, CulturalNote: "Food connects us to heritage and happy memories across all cultures"},
			{ID: "j8", Text: "Take a photo walk - capture 5 things that bring you joy", Category: domain.CategoryCreative, TimeMinutes: 10, Points: 25},
		},
		domain.BandHigh: {
			{ID: "j9", Text: "Plan something fun for this week to keep the momentum", Category: domain.CategoryFun, TimeMinutes: 10, Points: 30, ResearchBasis: "Behavioral activation - planning positive activities sustains wellbeing (Lejuez et al., 2001)"},
			{ID: "j10", Text: "Write a letter to your future self about this moment", Category: domain.CategoryCreative, TimeMinutes: 10, Points: 35},
			{ID: "j11", Text: "Teach someone something you're good at", Category: domain.CategorySocial, TimeMinutes: 15, Points: 40, CulturalNote: "Knowledge sharing is valued across cultures as a way to build community"},
			{ID: "j12", Text: "Start a mini passion project inspired by this energy", Category: domain.CategoryCreative, TimeMinutes: 15, Points: 35},
		},
	},
	"sadness": {
		domain.BandLow: {
			{ID: "s1", Text: "Put on a cozy blanket and listen to your comfort song", Category: domain.CategoryMindful, TimeMinutes: 5, Points: 10, ResearchBasis: "Music therapy reduces cortisol and promotes emotional regulation (Thoma et al., 2013)"},
			{ID: "s2", Text: "Text someone you trust: 'Hey, thinking of you'", Category: domain.CategorySocial, TimeMinutes: 2, Points: 15},
			{ID: "s3", Text: "Step outside for fresh air, even just for 2 minutes", Category: domain.CategoryBody, TimeMinutes: 2, Points: 10, ResearchBasis: "Nature exposure reduces rumination (Bratman et al., 2015)"},
			{ID: "s4", Text: "Watch a short funny video that always makes you smile", Category: domain.CategoryFun, TimeMinutes: 3, Points: 5},
		},
		domain.BandMedium: {
			{ID: "s5", Text: "Write down what you're feeling without judging it", Category: domain.CategoryMindful, TimeMinutes: 5, Points: 20, ResearchBasis: "Expressive writing reduces emotional distress (Pennebaker, 1997)"},
			{ID: "s6", Text: "Go for a 10-minute walk and notice 5 colors around you", Category: domain.CategoryBody, TimeMinutes: 10, Points: 25, ResearchBasis: "Grounding techniques from DBT - using senses to anchor to present"},
			{ID: "s7", Text: "Cook a comfort food from your childhood or culture", Category: domain.CategoryCreative, TimeMinutes: 20, Points: 30, CulturalNote: "Comfort food varies by culture - any food that feels like home counts"},
			{ID: "s8", Text: "Call someone who gets you - family, friend, or mentor", Category: domain.CategorySocial, TimeMinutes: 10, Points: 25},
		},
		domain.BandHigh: {
			{ID: "s9", Text: "Hold an ice cube in your hand for 60 seconds, focus on the cold", Category: domain.CategoryBody, TimeMinutes: 2, Points: 20, ResearchBasis: "DBT TIPP skill - Temperature change activates dive reflex, calming the nervous system"},
			{ID: "s10", Text: "Do 20 jumping jacks right now to shift your body state", Category: domain.CategoryBody, TimeMinutes: 2, Points: 20, ResearchBasis: "Exercise releases endorphins and interrupts depressive rumination (Rethorst & Trivedi, 2013)"},
			{ID: "s11", Text: "Name 5 things you can see, 4 you can touch, 3 you can hear", Category: domain.CategoryMindful, TimeMinutes: 3, Points: 15, ResearchBasis: "5-4-3-2-1 grounding technique from anxiety management research"},
			{ID: "s12", Text: "Draw or scribble your feelings - no rules, just let it out", Category: domain.CategoryCreative, TimeMinutes: 5, Points: 25},
			{ID: "s13", Text: "Splash cold water on your face 3 times", Category: domain.CategoryBody, TimeMinutes: 1, Points: 15, ResearchBasis: "Mammalian dive reflex - cold water activates parasympathetic nervous system"},
		},
	},
	"anger": {
		domain.BandLow: {
			{ID: "a1", Text: "Take 5 slow, deep breaths - in for 4, out for 6", Category: domain.CategoryMindful, TimeMinutes: 2, Points: 10, ResearchBasis: "Extended exhale activates parasympathetic nervous system (Zaccaro et al., 2018)"},
			{ID: "a2", Text: "Write an angry letter you'll never send", Category: domain.CategoryCreative, TimeMinutes: 5, Points: 15, ResearchBasis: "Expressive writing processes anger safely (Pennebaker, 1997)"},
			{ID: "a3", Text: "Listen to a song that matches your anger - let it out", Category: domain.CategoryFun, TimeMinutes: 4, Points: 10},
			{ID: "a4", Text: "Squeeze a pillow as hard as you can for 30 seconds, then release", Category: domain.CategoryBody, TimeMinutes: 1, Points: 10, ResearchBasis: "Progressive muscle relaxation (Jacobson, 1938)"},
		},
		domain.BandMedium: {
			{ID: "a5", Text: "Do a 5-minute power walk - walk fast and let the tension go", Category: domain.CategoryBody, TimeMinutes: 5, Points: 20, ResearchBasis: "Physical activity is one of the most effective anger management strategies (Craft & Perna, 2004)"},
			{ID: "a6", Text: "Rip up old paper or magazines into tiny pieces", Category: domain.CategoryFun, TimeMinutes: 5, Points: 15},
			{ID: "a7", Text: "Write a rap, poem, or rant about what's making you mad", Category: domain.CategoryCreative, TimeMinutes: 10, Points: 25, CulturalNote: "Many cultures use storytelling and music to process strong emotions"},
			{ID: "a8", Text: "Talk to someone you trust about what happened", Category: domain.CategorySocial, TimeMinutes: 10, Points: 25},
		},
		domain.BandHigh: {
			{ID: "a9", Text: "Do 20 push-ups or 30 jumping jacks RIGHT NOW", Category: domain.CategoryBody, TimeMinutes: 3, Points: 25, ResearchBasis: "Intense exercise rapidly reduces anger arousal (Thayer, 2001)"},
			{ID: "a10", Text: "Hold ice cubes in both hands until the anger shifts", Category: domain.CategoryBody, TimeMinutes: 2, Points: 20, ResearchBasis: "DBT TIPP technique - temperature change interrupts emotional escalation"},
			{ID: "a11", Text: "Scream into a pillow for 10 seconds, then breathe", Category: domain.CategoryBody, TimeMinutes: 1, Points: 15},
			{ID: "a12", Text: "Count backwards from 100 by 7s - focus on the math", Category: domain.CategoryMindful, TimeMinutes: 3, Points: 20, ResearchBasis: "Cognitive defusion from ACT - redirecting attention to reduce emotional intensity"},
			{ID: "a13", Text: "Splash very cold water on your face and wrists", Category: domain.CategoryBody, TimeMinutes: 1, Points: 15},
		},
	},
	"fear": {
		domain.BandLow: {
			{ID: "f1", Text: "Try box breathing: in 4, hold 4, out 4, hold 4", Category: domain.CategoryMindful, TimeMinutes: 3, Points: 10, ResearchBasis: "Box breathing is used by Navy SEALs for stress regulation"},
			{ID: "f2", Text: "List 3 times you handled something scary and survived", Category: domain.CategoryMindful, TimeMinutes: 3, Points: 15, ResearchBasis: "Self-efficacy building (Bandura, 1977)"},
			{ID: "f3", Text: "Ground yourself: press your feet firmly into the floor", Category: domain.CategoryBody, TimeMinutes: 1, Points: 5, ResearchBasis: "Somatic grounding reduces anxiety activation"},
			{ID: "f4", Text: "Text a friend: 'What's the silliest thing that happened to you today?'", Category: domain.CategorySocial, TimeMinutes: 2, Points: 10},
		},
		domain.BandMedium: {
			{ID: "f5", Text: "Do a body scan: slowly notice each part of your body from toes to head", Category: domain.CategoryMindful, TimeMinutes: 5, Points: 20, ResearchBasis: "Body scan meditation reduces anxiety (Kabat-Zinn, 1990)"},
			{ID: "f6", Text: "Write your worry on paper, then fold it into a tiny square", Category: domain.CategoryCreative, TimeMinutes: 3, Points: 15, ResearchBasis: "Externalization of worry reduces its power (narrative therapy)"},
			{ID: "f7", Text: "Put on your favorite upbeat song and walk in place to the beat", Category: domain.CategoryBody, TimeMinutes: 5, Points: 20},
			{ID: "f8", Text: "Make a 'What I Can Control' vs 'What I Can't' list", Category: domain.CategoryMindful, TimeMinutes: 5, Points: 20, ResearchBasis: "Circle of control/influence from CBT"},
		},
		domain.BandHigh: {
			{ID: "f9", Text: "Butterfly tap: cross your arms and tap shoulders alternately", Category: domain.CategoryBody, TimeMinutes: 3, Points: 20, ResearchBasis: "Bilateral stimulation from EMDR reduces acute anxiety (Shapiro, 2001)"},
			{ID: "f10", Text: "Name 5 things you see, 4 you touch, 3 you hear, 2 you smell, 1 you taste", Category: domain.CategoryMindful, TimeMinutes: 3, Points: 20, ResearchBasis: "5-4-3-2-1 grounding - evidence-based anxiety intervention"},
			{ID: "f11", Text: "Hum your favorite song loudly - humming activates your vagus nerve", Category: domain.CategoryBody, TimeMinutes: 2, Points: 15, ResearchBasis: "Vagal toning through vocalization (Porges, 2011)"},
			{ID: "f12", Text: "Run cold water over your wrists for 30 seconds", Category: domain.CategoryBody, TimeMinutes: 1, Points: 15},
			{ID: "f13", Text: "Do the 4-7-8 breath: in 4, hold 7, out 8 - repeat 4 times", Category: domain.CategoryMindful, TimeMinutes: 2, Points: 15, ResearchBasis: "Dr. Andrew Weil's relaxation breath technique"},
		},
	},
	"surprise": {
		domain.BandLow: {
			{ID: "su1", Text: "Pause and take 3 deep breaths before reacting", Category: domain.CategoryMindful, TimeMinutes: 1, Points: 10},
			{ID: "su2", Text: "Write down what just happened in simple words", Category: domain.CategoryMindful, TimeMinutes: 3, Points: 15, ResearchBasis: "Narrative processing helps integrate unexpected experiences"},
			{ID: "su3", Text: "Ask someone to explain something you're confused about - it's okay!", Category: domain.CategorySocial, TimeMinutes: 5, Points: 15, CulturalNote: "Asking questions is brave - every culture values learning"},
			{ID: "su4", Text: "Look up one new thing about what's confusing you", Category: domain.CategoryFun, TimeMinutes: 5, Points: 10},
		},
		domain.BandMedium: {
			{ID: "su5", Text: "Talk it through with someone: 'I'm feeling confused about...'", Category: domain.CategorySocial, TimeMinutes: 5, Points: 20},
			{ID: "su6", Text: "Draw a mind map of your thoughts - put confusion in the center", Category: domain.CategoryCreative, TimeMinutes: 10, Points: 25},
			{ID: "su7", Text: "Write down what you DO know vs what you DON'T know", Category: domain.CategoryMindful, TimeMinutes: 5, Points: 20},
			{ID: "su8", Text: "Move your body - a short walk helps the brain process", Category: domain.CategoryBody, TimeMinutes: 10, Points: 20},
		},
		domain.BandHigh: {
			{ID: "su9", Text: "Focus on one thing at a time - pick the most important one", Category: domain.CategoryMindful, TimeMinutes: 5, Points: 25},
			{ID: "su10", Text: "Call someone you trust for perspective", Category: domain.CategorySocial, TimeMinutes: 10, Points: 30, CulturalNote: "In many cultures, community elders or mentors help navigate confusion"},
			{ID: "su11", Text: "Do something physical: jumping jacks, stretches, or a quick walk", Category: domain.CategoryBody, TimeMinutes: 5, Points: 20},
			{ID: "su12", Text: "Write yourself a pep talk: 'I've been confused before and figured it out'", Category: domain.CategoryCreative, TimeMinutes: 5, Points: 25},
		},
	},
	"calm": {
		domain.BandLow: {
			{ID: "c1", Text: "Savor this moment - close your eyes and breathe for 30 seconds", Category: domain.CategoryMindful, TimeMinutes: 1, Points: 10, ResearchBasis: "Savoring positive experiences extends their benefit (Bryant & Veroff, 2007)"},
			{ID: "c2", Text: "Send a kind message to someone who might need it", Category: domain.CategorySocial, TimeMinutes: 2, Points: 15},
			{ID: "c3", Text: "Stretch gently for 2 minutes - enjoy how your body feels", Category: domain.CategoryBody, TimeMinutes: 2, Points: 10},
		},
		domain.BandMedium: {
			{ID: "c4", Text: "Journal about what brought you to this calm place", Category: domain.CategoryCreative, TimeMinutes: 5, Points: 20, ResearchBasis: "Reflecting on calm states builds emotional awareness"},
			{ID: "c5", Text: "Try a new creative activity while you're in this good headspace", Category: domain.CategoryCreative, TimeMinutes: 15, Points: 25},
			{ID: "c6", Text: "Go for a mindful walk - notice nature around you", Category: domain.CategoryBody, TimeMinutes: 10, Points: 20},
		},
		domain.BandHigh: {
			{ID: "c7", Text: "Set a meaningful intention or goal for this week", Category: domain.CategoryMindful, TimeMinutes: 5, Points: 25, ResearchBasis: "Implementation intentions increase goal success (Gollwitzer, 1999)"},
			{ID: "c8", Text: "Reach out to someone you've been meaning to connect with", Category: domain.CategorySocial, TimeMinutes: 10, Points: 30},
			{ID: "c9", Text: "Create something: write, draw, cook, build - channel this energy", Category: domain.CategoryCreative, TimeMinutes: 15, Points: 35},
		},
	},
}
