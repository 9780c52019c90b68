package catalog

import "github.com/bhava-app/bhava/internal/domain"

// Regions is the crisis-resource directory, keyed by region id.
// "global" is the fallback for locales without a dedicated entry.
var Regions = []domain.RegionResources{
	{
		ID: "us", Label: "United States", Flag: "US",
		Helplines: []domain.Helpline{
			{Name: "988 Suicide & Crisis Lifeline", Number: "988", SMS: "Text HOME to 741741", Chat: "988lifeline.org/chat"},
			{Name: "Crisis Text Line", SMS: "Text HELLO to 741741"},
			{Name: "SAMHSA National Helpline", Number: "1-800-662-4357"},
			{Name: "Trevor Project (LGBTQ+ Youth)", Number: "1-866-488-7386", SMS: "Text START to 678-678", Chat: "thetrevorproject.org/get-help"},
			{Name: "National Alliance on Mental Illness (NAMI)", Number: "1-800-950-NAMI (6264)"},
		},
		SupportGroups: []domain.SupportGroup{
			{Name: "NAMI Support Groups", Description: "Free peer-led support groups in every state", URL: "nami.org/support-education", Type: domain.GroupPeer},
			{Name: "Active Minds", Description: "Mental health advocacy community for young adults", URL: "activeminds.org", Type: domain.GroupYouth},
			{Name: "7 Cups", Description: "Free online chat with trained listeners", URL: "7cups.com", Type: domain.GroupOnline},
			{Name: "Immigrant Hope", Description: "Support and resources for immigrant communities", URL: "immigranthope.org", Type: domain.GroupCultural},
			{Name: "To Write Love on Her Arms", Description: "Community for people struggling with depression, self-harm, addiction", URL: "twloha.com", Type: domain.GroupCommunity},
		},
	},
	{
		ID: "uk", Label: "United Kingdom", Flag: "GB",
		Helplines: []domain.Helpline{
			{Name: "Samaritans", Number: "116 123"},
			{Name: "Childline", Number: "0800 1111", Chat: "childline.org.uk/get-support"},
			{Name: "Shout", SMS: "Text SHOUT to 85258"},
			{Name: "CALM (Campaign Against Living Miserably)", Number: "0800 58 58 58", Chat: "thecalmzone.net/get-support"},
			{Name: "Mind Infoline", Number: "0300 123 3393"},
		},
		SupportGroups: []domain.SupportGroup{
			{Name: "Mind Side by Side", Description: "Online community for mental health support", URL: "mind.org.uk", Type: domain.GroupOnline},
			{Name: "Young Minds", Description: "UK charity for children and young people's mental health", URL: "youngminds.org.uk", Type: domain.GroupYouth},
			{Name: "Refugee Council", Description: "Support services for refugees and asylum seekers", URL: "refugeecouncil.org.uk", Type: domain.GroupCultural},
			{Name: "Togetherall", Description: "Free online mental health community", URL: "togetherall.com", Type: domain.GroupPeer},
		},
	},
	{
		ID: "ca", Label: "Canada", Flag: "CA",
		Helplines: []domain.Helpline{
			{Name: "988 Suicide Crisis Helpline", Number: "988", SMS: "Text 988"},
			{Name: "Kids Help Phone", Number: "1-800-668-6868", SMS: "Text CONNECT to 686868"},
			{Name: "Hope for Wellness Help Line", Number: "1-855-242-3310"},
			{Name: "Trans Lifeline", Number: "1-877-330-6366"},
		},
		SupportGroups: []domain.SupportGroup{
			{Name: "Canadian Mental Health Association", Description: "Community mental health programs", URL: "cmha.ca", Type: domain.GroupCommunity},
			{Name: "Foundry", Description: "Health and wellness services for ages 12-24", URL: "foundrybc.ca", Type: domain.GroupYouth},
			{Name: "Newcomers Centre", Description: "Support for immigrants and refugees", URL: "newcomerscentre.ca", Type: domain.GroupCultural},
			{Name: "Wellness Together Canada", Description: "Free mental health and substance use support", URL: "wellnesstogether.ca", Type: domain.GroupOnline},
		},
	},
	{
		ID: "au", Label: "Australia", Flag: "AU",
		Helplines: []domain.Helpline{
			{Name: "Lifeline", Number: "13 11 14", SMS: "Text 0477 13 11 14", Chat: "lifeline.org.au/crisis-chat"},
			{Name: "Kids Helpline", Number: "1800 55 1800", Chat: "kidshelpline.com.au"},
			{Name: "Beyond Blue", Number: "1300 22 4636", Chat: "beyondblue.org.au/get-support"},
			{Name: "QLife (LGBTQ+)", Number: "1800 184 527"},
		},
		SupportGroups: []domain.SupportGroup{
			{Name: "headspace", Description: "Mental health support for young people 12-25", URL: "headspace.org.au", Type: domain.GroupYouth},
			{Name: "SANE Australia", Description: "Support for people affected by complex mental health issues", URL: "sane.org", Type: domain.GroupPeer},
			{Name: "Settlement Services International", Description: "Support for refugees and migrants", URL: "ssi.org.au", Type: domain.GroupCultural},
		},
	},
	{
		ID: "in", Label: "India", Flag: "IN",
		Helplines: []domain.Helpline{
			{Name: "iCall (TISS)", Number: "9152987821"},
			{Name: "Vandrevala Foundation", Number: "1860-2662-345"},
			{Name: "AASRA", Number: "9820466726"},
			{Name: "Snehi", Number: "044-24640050"},
		},
		SupportGroups: []domain.SupportGroup{
			{Name: "The Live Love Laugh Foundation", Description: "Mental health awareness and support", URL: "thelivelovelaughfoundation.org", Type: domain.GroupCommunity},
			{Name: "YourDOST", Description: "Online counseling and emotional wellness", URL: "yourdost.com", Type: domain.GroupOnline},
			{Name: "Mpower", Description: "Youth mental health programs", URL: "mpowerminds.com", Type: domain.GroupYouth},
		},
	},
	{
		ID: "de", Label: "Germany", Flag: "DE",
		Helplines: []domain.Helpline{
			{Name: "Telefonseelsorge", Number: "0800 111 0 111"},
			{Name: "Telefonseelsorge (alternate)", Number: "0800 111 0 222"},
			{Name: "Nummer gegen Kummer (Youth)", Number: "116 111"},
			{Name: "Muslimisches Seelsorge Telefon", Number: "030 443 509 821"},
		},
		SupportGroups: []domain.SupportGroup{
			{Name: "Deutsche Depressionshilfe", Description: "Depression support and information", URL: "deutsche-depressionshilfe.de", Type: domain.GroupPeer},
			{Name: "Caritas Migrationsberatung", Description: "Counseling for immigrants and refugees", URL: "caritas.de", Type: domain.GroupCultural},
		},
	},
	{
		ID: "ph", Label: "Philippines", Flag: "PH",
		Helplines: []domain.Helpline{
			{Name: "National Center for Mental Health Crisis Hotline", Number: "0917-899-8727"},
			{Name: "Hopeline PH", Number: "0917-558-4673"},
			{Name: "In Touch Crisis Line", Number: "0917-800-1123"},
		},
		SupportGroups: []domain.SupportGroup{
			{Name: "Philippine Mental Health Association", Description: "Community mental health programs", URL: "pmha.org.ph", Type: domain.GroupCommunity},
			{Name: "MindNation", Description: "Mental health support for Filipino youth", URL: "mindnation.com", Type: domain.GroupYouth},
		},
	},
	{
		ID: "mx", Label: "Mexico", Flag: "MX",
		Helplines: []domain.Helpline{
			{Name: "SAPTEL", Number: "55 5259 8121"},
			{Name: "Linea de la Vida", Number: "800 911 2000"},
		},
		SupportGroups: []domain.SupportGroup{
			{Name: "Voz Pro Salud Mental", Description: "Mental health advocacy and support", URL: "vozprosaludmental.org.mx", Type: domain.GroupCommunity},
		},
	},
	{
		ID: "ng", Label: "Nigeria", Flag: "NG",
		Helplines: []domain.Helpline{
			{Name: "SURPIN (Suicide Research and Prevention Initiative)", Number: "+234 806 210 6493"},
			{Name: "Mental Health Foundation Nigeria", Number: "+234 809 111 6264"},
		},
		SupportGroups: []domain.SupportGroup{
			{Name: "She Writes Woman", Description: "Mental health advocacy and community support", URL: "shewriteswoman.org", Type: domain.GroupCommunity},
			{Name: "Mentally Aware Nigeria Initiative", Description: "Youth mental health awareness", URL: "mentallyaware.org", Type: domain.GroupYouth},
		},
	},
	{
		ID: "global", Label: "Other / Global", Flag: "GLOBAL",
		Helplines: []domain.Helpline{
			{Name: "International Association for Suicide Prevention", Chat: "iasp.info/resources/Crisis_Centres"},
			{Name: "Befrienders Worldwide", Chat: "befrienders.org"},
			{Name: "Crisis Text Line (International)", SMS: "crisistextline.org for local keyword"},
		},
		SupportGroups: []domain.SupportGroup{
			{Name: "7 Cups", Description: "Free online emotional support chat", URL: "7cups.com", Type: domain.GroupOnline},
			{Name: "TalkLife", Description: "Peer support app for young people worldwide", URL: "talklife.com", Type: domain.GroupYouth},
			{Name: "Refugees Welcome", Description: "International community for refugee support", URL: "refugees-welcome.net", Type: domain.GroupCultural},
		},
	},
}
