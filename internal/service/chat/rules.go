package chat

// Canned assistant copy. The rule order below is the tie-break policy:
// e.g. "experience leading a team" hits the experience rule, never the
// leadership one.

const greeting = "Hi there! I'm here to help you learn about my product management journey. " +
	"Ask me anything about my background, skills, projects, or PM life in general. " +
	"What would you like to know first?"

var replyRules = []rule{
	{
		keywords: []string{"experience", "years"},
		firstTime: "I've spent over 6 years in product management across fintech, e-commerce, and SaaS. " +
			"Fintech taught me compliance and trust, e-commerce the power of scale, and SaaS made me " +
			"obsess over retention. The revenue impact numbers look nice on paper, but they really stand " +
			"for a lot of late nights and failed experiments. What got you curious about my background?",
		followUp: "Since we were just talking about my experience: the biggest lesson from those years " +
			"wasn't technical at all. The best product decisions come out of the messiest conversations - " +
			"engineering wanting a rewrite, sales wanting features, users wanting simplicity. " +
			"Have you been in one of those situations? How did you handle it?",
	},
	{
		keywords: []string{"skill", "technical"},
		firstTime: "The usual suspects: product strategy, user research, Figma, Jira, analytics platforms, " +
			"and enough API and architecture knowledge to not constantly bug the engineers. Honestly " +
			"though, the real skills are the soft ones - reading between the lines in user feedback and " +
			"translating business speak into engineer speak. What's your experience with these tools?",
		followUp: "Building on what we discussed about skills - one thing I didn't mention is a mild " +
			"automation obsession. I once spent a weekend scripting our weekly reporting and saved the " +
			"team three hours every week. Do you automate the boring parts of your work too?",
	},
	{
		keywords: []string{"project", "product"},
		firstTime: "I've shipped 12+ products and 50+ features with strong user satisfaction, from payment " +
			"solutions to e-commerce platforms and SaaS tools. Each one taught me something new about " +
			"what breaks (spoiler: everything). I also have good failure stories, like the feature " +
			"literally nobody used. What kind of products are you working on?",
		followUp: "Since you're interested in my projects, here's the behind-the-scenes one: that unused " +
			"feature was a smart recommendation system. Three months of work, a big launch, and then " +
			"crickets - users just wanted better search. It taught me to validate assumptions early and " +
			"prototype everything first. Ever built something you were sure about that users ignored?",
	},
	{
		keywords: []string{"leadership", "team"},
		firstTime: "Leading teams is my favorite part. My philosophy: crystal-clear communication, " +
			"data-guided decisions (while still trusting your gut), and never forgetting the human " +
			"element. I try to create room for everyone to be heard, from the junior dev with a great " +
			"idea to the designer pushing back. How do you find cross-functional teams?",
		followUp: "Thinking more about leadership - the hardest part isn't managing up or down, it's " +
			"managing sideways. Getting marketing, sales, engineering, and design rowing in the same " +
			"direction is the real challenge. Pizza helps, seriously. Any alignment tricks that have " +
			"worked for you?",
	},
	{
		keywords: []string{"contact", "hire", "job"},
		firstTime: "I'm always excited to chat about new opportunities! For the real details about hiring " +
			"or roles, let's connect directly - the contact form on this site reaches me fastest. " +
			"What kind of role are you thinking about?",
	},
	{
		keywords: []string{"salary", "compensation"},
		firstTime: "For the nitty-gritty on compensation, let's have a proper conversation - feel free to " +
			"reach out directly through the contact form. What kind of opportunity are you exploring?",
	},
	{
		keywords: []string{"what about", "tell me more", "how about", "and you"},
		firstTime: "I love that you're digging deeper! Based on what we've been chatting about, I can " +
			"share more specific insights. Which aspect should I elaborate on? Or switch gears " +
			"completely - I'm all ears.",
	},
}

var fallbackReplies = []string{
	"That's a great question! I've got quite a bit of experience in product strategy and execution - " +
		"what specific aspect caught your interest?",
	"Ooh, interesting. I've been building user-centric products for a while now. Want to hear about " +
		"the technical side, leadership experiences, or specific project stories?",
	"I'm glad you're curious about my background! Product development and strategy have been quite " +
		"the journey. Which part would you like to explore?",
}
