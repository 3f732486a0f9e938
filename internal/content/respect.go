package content

import "github.com/pmma/lifeskills/internal/lifeskill"

var respectTraining = lifeskill.LifeSkill{
	ID:          "respect",
	Title:       "Respect",
	Slug:        "respect",
	Description: "The fundamental recognition of worth and dignity in oneself and others, demonstrated through conscious actions, thoughtful communication, and mindful interaction in all aspects of life.",
	Parable: lifeskill.Parable{
		Title: "The Master's Teacup",
		Content: `A wealthy businessman came to the renowned Master Li's dojo, demanding to learn "the most advanced techniques immediately." His expensive clothes and loud voice drew attention as he interrupted ongoing classes and spoke dismissively to junior students.

Master Li invited him for tea before training. As he poured, the businessman boasted about his achievements, his important connections, and his impatience with "beginner nonsense." His cup overflowed, hot tea spilling onto his expensive suit.

"Master! You're ruining my clothes!" the man shouted.

Master Li continued pouring until the pot was empty. "Tell me," he said calmly, "how much tea did your cup receive?"

"None! It was already full and overflowing!"

"Exactly," Master Li nodded. "Your mind, like this cup, is already full - of your own importance, your assumptions, your demands. Until you empty yourself and approach with respect for the process, the people, and the principles, no learning can enter."

The businessman stormed out, but returned the next week in simple training clothes. He bowed to Master Li and quietly asked, "May I begin again, Sensei?"

"Now," said Master Li with a smile, "you are ready to learn. Respect is not about being humble to get what you want - it's about recognizing that everyone and everything has value to teach you, if you approach with an open and respectful heart."

Years later, that same businessman became one of Master Li's most dedicated students, and eventually, a respected instructor himself - known for his patience with beginners and his deep reverence for the art.`,
		TeachingPoints: []string{
			"Respect begins with recognizing our own limitations and need to learn",
			"True respect sees value in every person and situation",
			"Arrogance blocks learning and growth",
			"Respect is demonstrated through actions, not just words",
			"A respectful heart creates space for wisdom to enter",
		},
	},
	Explanations: lifeskill.AgeTierExplanations{
		Young: lifeskill.Explanation{
			Definition: "Respect means treating others the way you want to be treated. In martial arts, respect is like being a good friend to everyone - listening when your instructor speaks, being kind to your training partners, and taking care of your dojo like it's your own home.",
			KeyConcepts: []string{
				"Bowing to show we care about our instructors and training partners",
				"Using kind words and gentle actions with everyone in class",
				"Listening carefully when others are talking or teaching",
				"Taking turns and sharing equipment without arguing",
				"Keeping our training space clean and organized for everyone",
			},
		},
		Teen: lifeskill.Explanation{
			Definition: "Respect in martial arts means recognizing the value and dignity of every person while honoring the traditions and principles of your art. It involves understanding that everyone has something to teach and learn, regardless of their rank or experience level.",
			KeyConcepts: []string{
				"Demonstrating humility by acknowledging both your strengths and areas for improvement",
				"Showing courtesy to all practitioners regardless of their skill level or background",
				"Honoring martial arts traditions while understanding their deeper meaning and purpose",
				"Taking responsibility for your actions and their impact on others in the dojo",
				"Supporting your training partners' growth through encouragement and constructive feedback",
			},
		},
		Adult: lifeskill.Explanation{
			Definition: "Respect in martial arts represents a fundamental understanding of interconnectedness and mutual dignity that extends far beyond courtesy or politeness. It encompasses a deep appreciation for the lineage of knowledge and the sacred responsibility of training safely with others.",
			KeyConcepts: []string{
				"Embodying respect as a leadership quality that inspires and guides newer students",
				"Understanding respect as reciprocal trust and the responsibility that comes with others' vulnerability",
				"Honoring the lineage and sacrifices of those who preserved and transmitted martial knowledge",
				"Integrating respectful principles into daily life decisions and interpersonal relationships",
				"Recognizing respect as a pathway to deeper self-awareness and emotional intelligence",
			},
		},
	},
	Quotes: []lifeskill.Quote{
		{
			ID:          "respect-quote-1",
			Text:        "Respect is earned. Honesty is appreciated. Trust is gained. Loyalty is returned.",
			Author:      "Unknown",
			Application: "In martial arts, respect creates the foundation for all other relationships and learning.",
			Category:    lifeskill.CategoryPhilosophy,
		},
		{
			ID:          "respect-quote-2",
			Text:        "The way to gain a good reputation is to endeavor to be what you desire to appear.",
			Author:      "Socrates",
			Application: "Authentic respect means embodying the principles both inside and outside the dojo.",
			Category:    lifeskill.CategoryPhilosophy,
		},
		{
			ID:          "respect-quote-3",
			Text:        "Respect for ourselves guides our morals; respect for others guides our manners.",
			Author:      "Laurence Sterne",
			Application: "Self-respect and respect for others work together to create proper martial arts etiquette.",
			Category:    lifeskill.CategoryMartialArts,
		},
		{
			ID:          "respect-quote-4",
			Text:        "I speak to everyone in the same way, whether he is the garbage man or the president of the university.",
			Author:      "Albert Einstein",
			Application: "True respect treats all training partners equally, regardless of rank or status.",
			Category:    lifeskill.CategoryLeadership,
		},
		{
			ID:          "respect-quote-5",
			Text:        "The respect that leadership must have requires that one's ethics be without question.",
			Author:      "James Mattis",
			Application: "Senior students and instructors must exemplify the highest standards of respectful behavior.",
			Category:    lifeskill.CategoryLeadership,
		},
		{
			ID:          "respect-quote-6",
			Text:        "Being brilliant is no great feat if you respect nothing.",
			Author:      "Johann Wolfgang von Goethe",
			Application: "Technical skill without respect limits one's potential as a complete martial artist.",
			Category:    lifeskill.CategoryMartialArts,
		},
	},
	Lessons: []lifeskill.Lesson{
		{
			ID:          "respect-lesson-1",
			Title:       "The Foundation of Respect: Self and Others",
			Description: "Learn how respect for yourself creates the foundation for respecting others.",
			AgeGroup:    lifeskill.AgeGroupAll,
		},
		{
			ID:          "respect-lesson-2",
			Title:       "Respectful Communication in Training",
			Description: "Master the art of giving and receiving feedback with respect and dignity.",
			AgeGroup:    lifeskill.AgeGroupTeen,
		},
		{
			ID:          "respect-lesson-3",
			Title:       "Honoring Martial Arts Traditions",
			Description: "Understand the deeper meaning behind martial arts customs and ceremonies.",
			AgeGroup:    lifeskill.AgeGroupAll,
		},
		{
			ID:          "respect-lesson-4",
			Title:       "Respect Through Actions, Not Words",
			Description: "Discover how small actions demonstrate bigger respect than grand gestures.",
			AgeGroup:    lifeskill.AgeGroupYoung,
		},
		{
			ID:          "respect-lesson-5",
			Title:       "Leading with Respect: Advanced Principles",
			Description: "Explore how respect becomes a tool for leadership and mentorship.",
			AgeGroup:    lifeskill.AgeGroupAdult,
		},
	},
	Exercises: []lifeskill.Exercise{
		{
			ID:        "respect-exercise-1",
			Title:     "The Respectful Bow Circle",
			Type:      lifeskill.ExerciseFoundational,
			Duration:  10,
			Materials: []string{"Open training space"},
			Process: []string{
				"Form a circle with all participants facing inward",
				"Practice different types of bows: greeting bow (15 degrees), respect bow (30 degrees), and deep respect bow (45 degrees)",
				"Each person takes turns entering the circle, making eye contact, and bowing to each person",
				"Recipients return the bow with equal intention and focus",
				"Conclude with a group bow, holding for 3 seconds while reflecting on respect for the group",
			},
			AgeGroup:        lifeskill.AgeGroupAll,
			InstructorNotes: "Focus on genuine eye contact and intention rather than perfect form. Discuss how bowing makes them feel both giving and receiving.",
		},
		{
			ID:        "respect-exercise-2",
			Title:     "Partner Mirror Respect",
			Type:      lifeskill.ExercisePhysical,
			Duration:  15,
			Materials: []string{"Partners of similar height if possible"},
			Process: []string{
				"Partners face each other in ready stance, maintaining eye contact",
				"One partner leads slow, controlled movements (basic blocks, strikes, stances)",
				"The other partner mirrors the movements exactly, maintaining eye contact",
				"Switch roles every 2 minutes",
				`Practice "respectful resistance" - apply gentle, controlled pressure to test partner's balance`,
				"End with mutual bow and discussion of trust and cooperation",
			},
			AgeGroup:        lifeskill.AgeGroupAll,
			InstructorNotes: "Emphasize that this exercise requires complete trust. The leader must move slowly and safely, the follower must stay focused and present.",
		},
		{
			ID:        "respect-exercise-3",
			Title:     "The Compliment Kata",
			Type:      lifeskill.ExerciseFoundational,
			Duration:  20,
			Materials: []string{"Basic martial arts techniques", "Observation sheets"},
			Process: []string{
				"Students perform basic kata or technique sequences in pairs",
				"Observer watches for one specific positive element in partner's technique",
				"After each round, observer offers one genuine, specific compliment",
				`Performer accepts compliment with "Thank you" and a bow`,
				"Switch roles and repeat",
				"Advanced version: include one respectful suggestion for improvement along with compliment",
			},
			AgeGroup:        lifeskill.AgeGroupAll,
			InstructorNotes: "Teach students to find genuine positives, not generic praise. Model how to give and receive compliments gracefully.",
		},
		{
			ID:        "respect-exercise-4",
			Title:     "Respectful Sparring Protocol",
			Type:      lifeskill.ExerciseAdvanced,
			Duration:  25,
			Materials: []string{"Protective gear as appropriate", "Timer"},
			Process: []string{
				"Begin with formal bow and verbal agreement to train safely",
				"Practice light contact sparring with emphasis on control rather than power",
				"After each exchange, brief pause to check partner's wellbeing",
				"If accidental contact occurs, immediate stop, apology, and check for injury",
				"Rotate partners every 3 minutes with formal bow and gratitude expression",
				"Conclude with group discussion on how respect changes the sparring experience",
			},
			AgeGroup:        lifeskill.AgeGroupTeen,
			InstructorNotes: "Safety is paramount. Use this to teach that respect in sparring means protecting your partner while challenging them appropriately.",
		},
		{
			ID:        "respect-exercise-5",
			Title:     "The Teaching Circle of Honor",
			Type:      lifeskill.ExerciseAdvanced,
			Duration:  30,
			Materials: []string{"Various martial arts techniques", "Teaching rotation chart"},
			Process: []string{
				"Senior students teach basic techniques to junior students",
				"Each teacher must adapt their instruction to their student's level and learning style",
				"Teachers practice patience, encouragement, and clear communication",
				"Students practice active listening, asking respectful questions, and following instruction",
				"Every 5 minutes, rotate so everyone gets to teach and be taught",
				"Conclude with appreciation circle where each person thanks their teachers and students",
			},
			AgeGroup:        lifeskill.AgeGroupAdult,
			InstructorNotes: "This develops leadership skills and humility simultaneously. Observe how advanced students adapt their teaching style and how beginners respond to peer instruction.",
		},
	},
}
