package content

import "github.com/pmma/lifeskills/internal/lifeskill"

var gritTraining = lifeskill.LifeSkill{
	ID:          "grit",
	Title:       "Grit",
	Slug:        "grit",
	Description: "The ability to persevere through challenges, maintain long-term commitment, and develop resilience through sustained effort and determination.",
	Parable: lifeskill.Parable{
		Title: "The Bamboo and the Oak",
		Content: `Master Chen stood before his students in the dojo, holding two items: a thick oak branch and a thin piece of bamboo. The class had just witnessed several students struggle with their belt testing, some giving up when techniques became difficult.

"Which is stronger?" Master Chen asked, holding up both pieces.

"The oak!" called out several students, pointing to its obvious thickness and solidity.

Master Chen smiled and began to bend both. The oak branch, rigid and unyielding, snapped with a sharp crack. The bamboo bent completely, touching the ground, then sprang back to its original position, unbroken.

"Young Jake here," Master Chen gestured to a student who had quit mid-test, "trains like the oak. He builds strength quickly, shows impressive power, but when real pressure comes - when the test becomes truly challenging - he breaks. He expects immediate results and gives up when progress slows."

He turned to Sarah, a student who had failed her test three times but kept returning. "Sarah trains like the bamboo. She bends under pressure but never breaks. Each failure teaches her. Each setback makes her more flexible, more resilient. She understands that true strength comes not from avoiding the storm, but from learning to dance with it."

Master Chen placed both pieces on the ground. "The oak grows tall quickly but falls in the first strong wind. The bamboo grows slowly, bends with every storm, and stands for generations. In martial arts, as in life, grit is not about being unbreakable - it's about returning to your stance no matter how many times you're knocked down."

Six months later, Sarah earned her black belt. Jake was still talking about "when he had time" to return to training.`,
		TeachingPoints: []string{
			"True strength comes from resilience, not rigidity",
			"Failure is a teacher, not an endpoint",
			"Consistent effort over time surpasses sporadic intensity",
			"Grit means adapting to challenges while maintaining core purpose",
			"Character is built through how we respond to setbacks",
		},
	},
	Explanations: lifeskill.AgeTierExplanations{
		Young: lifeskill.Explanation{
			Definition: "Grit is like being a martial arts superhero. Even when training gets hard, even when you want to quit, you keep trying. It's having a brave heart that never gives up.",
			KeyConcepts: []string{
				`Grit means "I'll try again" instead of "I can't do it"`,
				"Every martial artist gets frustrated - that's normal and okay",
				"The belt around your waist shows how much grit you've built",
				"Grit grows stronger each time you choose to continue when things are hard",
			},
		},
		Teen: lifeskill.Explanation{
			Definition: "Grit is the combination of passion and perseverance toward long-term goals. In martial arts, it's the mental toughness that keeps you training when motivation fades, helps you learn from defeats, and drives continuous improvement despite plateaus and setbacks.",
			KeyConcepts: []string{
				"Grit involves both resilience (bouncing back) and persistence (not giving up)",
				"It's different from talent - grit can be developed through practice",
				"Martial arts provides perfect training ground for building grit",
				"Grit transfers from dojo to school, relationships, and future careers",
			},
		},
		Adult: lifeskill.Explanation{
			Definition: "Grit encompasses the psychological trait of passion and perseverance for long-term and meaningful goals. It's the ability to maintain effort and interest despite failures, adversity, and plateaus in progress. In martial arts context, grit manifests as sustained commitment to mastery, resilience in facing challenges, and the wisdom to view setbacks as essential components of growth.",
			KeyConcepts: []string{
				"Grit predicts success better than talent or intelligence",
				"It involves deliberate practice through discomfort zones",
				"Develops through progressive challenges and reflection on experiences",
				"Creates a growth mindset that embraces challenges as opportunities",
				"Builds character that extends far beyond physical techniques",
			},
		},
	},
	Quotes: []lifeskill.Quote{
		{
			ID:          "grit-quote-1",
			Text:        "The ultimate aim of martial arts is not having to use them.",
			Author:      "Miyamoto Musashi",
			Application: "True grit builds inner strength that prevents many conflicts through confidence and composure.",
			Category:    lifeskill.CategoryMartialArts,
		},
		{
			ID:          "grit-quote-2",
			Text:        "I fear not the man who has practiced 10,000 kicks once, but I fear the man who has practiced one kick 10,000 times.",
			Author:      "Bruce Lee",
			Application: "Grit is demonstrated through repetitive, consistent practice rather than sporadic efforts.",
			Category:    lifeskill.CategoryMartialArts,
		},
		{
			ID:          "grit-quote-3",
			Text:        "The best fighter is never angry.",
			Author:      "Lao Tzu",
			Application: "Grit includes emotional regulation - persevering without losing control or composure.",
			Category:    lifeskill.CategoryPhilosophy,
		},
		{
			ID:          "grit-quote-4",
			Text:        "Fall down seven times, get up eight.",
			Author:      "Japanese Proverb",
			Application: "The essence of grit - resilience and the refusal to stay down.",
			Category:    lifeskill.CategoryPhilosophy,
		},
		{
			ID:          "grit-quote-5",
			Text:        "It is not the mountain we conquer, but ourselves.",
			Author:      "Sir Edmund Hillary",
			Application: "Martial arts training with grit is ultimately about self-mastery.",
			Category:    lifeskill.CategoryLeadership,
		},
		{
			ID:          "grit-quote-6",
			Text:        "Grit is passion and perseverance for very long-term goals. Grit is having stamina.",
			Author:      "Angela Duckworth",
			Application: "Direct definition emphasizing the long-term nature of true grit.",
			Category:    lifeskill.CategoryLeadership,
		},
	},
	Lessons: []lifeskill.Lesson{
		{
			ID:          "grit-lesson-1",
			Title:       "Understanding Grit vs. Stubbornness",
			Description: "Learn the crucial difference between adaptive persistence (grit) and rigid stubbornness.",
			AgeGroup:    lifeskill.AgeGroupAll,
		},
		{
			ID:          "grit-lesson-2",
			Title:       "The Grit-Building Cycle in Martial Arts",
			Description: "Discover how each belt level represents completed grit development cycles.",
			AgeGroup:    lifeskill.AgeGroupAll,
		},
		{
			ID:          "grit-lesson-3",
			Title:       "Internal vs. External Motivation",
			Description: "Explore the difference between training for external rewards vs. internal growth.",
			AgeGroup:    lifeskill.AgeGroupTeen,
		},
		{
			ID:          "grit-lesson-4",
			Title:       `The Power of "Yet"`,
			Description: "Transform limiting beliefs by adding one simple word to your vocabulary.",
			AgeGroup:    lifeskill.AgeGroupYoung,
		},
		{
			ID:          "grit-lesson-5",
			Title:       "Embracing the Beginner's Mind",
			Description: "Learn how humility in learning keeps grit growing throughout your martial arts journey.",
			AgeGroup:    lifeskill.AgeGroupAdult,
		},
	},
	Exercises: []lifeskill.Exercise{
		{
			ID:        "grit-exercise-1",
			Title:     "The Grit Assessment Mirror",
			Type:      lifeskill.ExerciseFoundational,
			Duration:  10,
			Materials: []string{"Journal or reflection sheet"},
			Process: []string{
				"Students reflect on their current training challenges",
				"Rate their typical response on a scale of 1-10 (1 = give up quickly, 10 = never give up)",
				"Identify one specific area where they want to build more grit",
				"Set a measurable goal for the next 30 days",
			},
			AgeGroup:        lifeskill.AgeGroupAll,
			InstructorNotes: "This creates self-awareness and personal investment in grit development.",
		},
		{
			ID:        "grit-exercise-2",
			Title:     "The Technique Persistence Challenge",
			Type:      lifeskill.ExercisePhysical,
			Duration:  20,
			Materials: []string{"Basic martial arts equipment"},
			Process: []string{
				"Choose one challenging technique each student struggles with",
				"Set a timer for 15 minutes of focused practice",
				"Track attempts, not successes",
				"Celebrate the student who makes the most attempts, regardless of success rate",
				"Debrief on how persistence felt and what they learned",
			},
			AgeGroup:        lifeskill.AgeGroupAll,
			InstructorNotes: "Shifts focus from perfection to effort and persistence.",
		},
		{
			ID:        "grit-exercise-3",
			Title:     "The Failure Journal",
			Type:      lifeskill.ExerciseFoundational,
			Duration:  5,
			Materials: []string{"Small notebook for each student"},
			Process: []string{
				"After each class, students write down one thing that didn't go well",
				"Next to it, they write what they learned from the experience",
				"Weekly review to see patterns and growth",
				"Monthly sharing of biggest learning moments",
			},
			AgeGroup:        lifeskill.AgeGroupAll,
			InstructorNotes: "Reframes failure as valuable data for improvement.",
		},
		{
			ID:        "grit-exercise-4",
			Title:     "The Grit Buddy System",
			Type:      lifeskill.ExerciseAdvanced,
			Duration:  30,
			Materials: []string{"Partnership contracts"},
			Process: []string{
				"Pair students with similar goals but different strengths",
				"Each commits to supporting their partner's grit development",
				"Weekly check-ins on goals and challenges",
				"Monthly presentations on their partner's growth",
			},
			AgeGroup:        lifeskill.AgeGroupTeen,
			InstructorNotes: "Builds accountability and teaches grit through helping others develop it.",
		},
		{
			ID:        "grit-exercise-5",
			Title:     "The Plateau Breakthrough Project",
			Type:      lifeskill.ExerciseAdvanced,
			Duration:  45,
			Materials: []string{"Progress tracking sheets"},
			Process: []string{
				"Identify students experiencing plateaus in their training",
				"Create specific 30-day challenges to push through the plateau",
				"Daily micro-goals with weekly assessments",
				"Document the breakthrough process for others to learn from",
			},
			AgeGroup:        lifeskill.AgeGroupAdult,
			InstructorNotes: "Teaches that plateaus are normal and can be overcome with strategic grit.",
		},
	},
}
