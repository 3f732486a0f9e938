package content

import "github.com/pmma/lifeskills/internal/lifeskill"

var confidenceTraining = lifeskill.LifeSkill{
	ID:          "confidence",
	Title:       "Confidence",
	Slug:        "confidence",
	Description: "Build unshakeable self-belief through progressive challenges, developing inner strength that radiates outward in all aspects of life.",
	Parable: lifeskill.Parable{
		Title: "The Student Who Feared the Break",
		Content: `Maya stood frozen before the wooden board, her hand trembling slightly as she prepared for her first breaking test. Around her, other students had already completed their breaks with confident strikes, their boards splitting cleanly in half.

"I can't do this, Sensei," Maya whispered to Master Rodriguez. "What if I hurt my hand? What if I fail in front of everyone?"

Master Rodriguez had seen this before - a capable student paralyzed not by lack of skill, but by lack of confidence. Maya had perfect technique in practice, but when it mattered, doubt crept in like a shadow.

"Maya," Master Rodriguez said gently, "tell me, how many times have you practiced this technique?"

"Hundreds, Sensei."

"And how many times have you successfully completed the motion?"

"Almost every time," Maya admitted.

"Then the only thing standing between you and success is not your ability - it's your belief in your ability." Master Rodriguez picked up a thinner board. "Let's start here."

"Confidence," Master Rodriguez explained, "is not built by attempting the impossible. It's built by succeeding at increasingly difficult challenges. Each success becomes proof that you are capable of more than you believed."

Maya struck the thin board. It broke easily. Then a slightly thicker one. Success again. With each break, her posture straightened, her breathing steadied, and her strikes became more powerful.

Finally, she stood before the original board. Her strike was clean, powerful, and confident. The board split perfectly in half.

Later, as Maya helped clean up, she realized something profound. "Sensei, the board didn't change. I did."

Master Rodriguez nodded. "True confidence isn't the absence of fear, Maya. It's the knowledge that you have successfully faced challenges before, and that knowledge gives you the strength to face the next one."`,
		TeachingPoints: []string{
			"Confidence is built through progressive challenges and incremental successes",
			"True confidence comes from proven ability, not false bravado",
			"Fear and confidence can coexist - confidence helps us act despite fear",
			"Each small victory becomes evidence of our growing capabilities",
			"Confidence is earned through practice and sustained effort, not given",
		},
	},
	Explanations: lifeskill.AgeTierExplanations{
		Young: lifeskill.Explanation{
			Definition: `Confidence is like having a superpower that grows stronger every time you try something new and succeed. It's the brave feeling inside that says "I can do this!" even when something looks hard or scary.`,
			KeyConcepts: []string{
				"Confidence grows when we practice and get better at things",
				"It's okay to feel nervous - confident people feel nervous too sometimes",
				"Every time we try our best, we build more confidence inside us",
				"Confident students help other students feel brave and strong too",
				"We build confidence by starting with easier things and working up to harder ones",
			},
		},
		Teen: lifeskill.Explanation{
			Definition: "Confidence is the inner knowledge that you have the skills, preparation, and resilience to handle challenges effectively. It's built through actual achievements and develops into a stable foundation for taking on increasingly complex situations.",
			KeyConcepts: []string{
				"Genuine confidence comes from competence - building real skills through practice",
				"Confident people acknowledge their limitations while focusing on their strengths",
				"It requires taking calculated risks and learning from both successes and failures",
				"Confidence in martial arts translates to confidence in school, relationships, and life goals",
				"Building others up increases your own confidence and creates positive community",
			},
		},
		Adult: lifeskill.Explanation{
			Definition: "Confidence represents a deep-seated trust in one's ability to navigate challenges, adapt to circumstances, and maintain personal integrity under pressure. It encompasses self-efficacy, emotional regulation, and the wisdom to know when to act and when to seek support.",
			KeyConcepts: []string{
				"Authentic confidence balances self-assurance with humility and continuous learning",
				"It involves accepting responsibility for outcomes while maintaining resilience through setbacks",
				"Confident leaders inspire confidence in others through consistent, principled action",
				"True confidence includes the wisdom to recognize and work within personal limitations",
				"It serves as a foundation for ethical decision-making and courageous leadership",
			},
		},
	},
	Quotes: []lifeskill.Quote{
		{
			ID:          "confidence-quote-1",
			Text:        "You are braver than you believe, stronger than you seem, and smarter than you think.",
			Author:      "A.A. Milne",
			Application: "Students often underestimate their capabilities until they test themselves in training.",
			Category:    lifeskill.CategoryPhilosophy,
		},
		{
			ID:          "confidence-quote-2",
			Text:        "The way to develop self-confidence is to do the thing you fear and get a record of successful experiences behind you.",
			Author:      "William Jennings Bryan",
			Application: "Martial arts provides a safe environment to face fears and build proven competence.",
			Category:    lifeskill.CategoryLeadership,
		},
		{
			ID:          "confidence-quote-3",
			Text:        "Confidence is not 'they will like me'. Confidence is 'I'll be fine if they don't'.",
			Author:      "Christina Grimmie",
			Application: "True martial arts confidence comes from inner strength, not external validation.",
			Category:    lifeskill.CategoryPhilosophy,
		},
		{
			ID:          "confidence-quote-4",
			Text:        "A black belt is a white belt who never gave up.",
			Author:      "Traditional Martial Arts Saying",
			Application: "Confidence builds through persistence and continuous effort, not natural talent alone.",
			Category:    lifeskill.CategoryMartialArts,
		},
		{
			ID:          "confidence-quote-5",
			Text:        "It is not the mountain we conquer, but ourselves.",
			Author:      "Sir Edmund Hillary",
			Application: "The greatest victories in martial arts are internal - overcoming self-doubt and fear.",
			Category:    lifeskill.CategoryMartialArts,
		},
		{
			ID:          "confidence-quote-6",
			Text:        "Leadership is not about being in charge. It is about taking care of those in your charge.",
			Author:      "Simon Sinek",
			Application: "Confident martial artists use their strength to protect and elevate others.",
			Category:    lifeskill.CategoryLeadership,
		},
	},
	Lessons: []lifeskill.Lesson{
		{
			ID:          "confidence-lesson-1",
			Title:       "The Confidence-Competence Connection",
			Description: "Understand how real skills and proven abilities create lasting self-confidence.",
			AgeGroup:    lifeskill.AgeGroupAll,
		},
		{
			ID:          "confidence-lesson-2",
			Title:       "Progressive Challenge Training",
			Description: "Learn to build confidence through graduated challenges that stretch your abilities safely.",
			AgeGroup:    lifeskill.AgeGroupAll,
		},
		{
			ID:          "confidence-lesson-3",
			Title:       "Confident Body Language and Presence",
			Description: "Discover how posture, breathing, and movement reflect and reinforce inner confidence.",
			AgeGroup:    lifeskill.AgeGroupTeen,
		},
		{
			ID:          "confidence-lesson-4",
			Title:       "Overcoming Performance Anxiety",
			Description: "Master techniques for managing nerves during testing, sparring, and demonstrations.",
			AgeGroup:    lifeskill.AgeGroupYoung,
		},
		{
			ID:          "confidence-lesson-5",
			Title:       "Building Confidence in Others",
			Description: "Learn how confident leadership inspires and develops confidence throughout your community.",
			AgeGroup:    lifeskill.AgeGroupAdult,
		},
	},
	Exercises: []lifeskill.Exercise{
		{
			ID:        "confidence-exercise-1",
			Title:     "The Success Journal",
			Type:      lifeskill.ExerciseFoundational,
			Duration:  10,
			Materials: []string{"Small notebook for each student", "Pens"},
			Process: []string{
				`Each student receives a personal "Success Journal"`,
				"After each class, write down one thing they did well or improved",
				"Include both technical skills and personal breakthroughs",
				"Weekly sharing circle where students read one success entry",
				"Monthly review to see patterns of growth and building confidence",
			},
			AgeGroup:        lifeskill.AgeGroupAll,
			InstructorNotes: "Focus on effort and improvement rather than perfection. Help students identify successes they might overlook.",
		},
		{
			ID:        "confidence-exercise-2",
			Title:     "Progressive Breaking Challenge",
			Type:      lifeskill.ExercisePhysical,
			Duration:  25,
			Materials: []string{"Breaking boards of various thicknesses", "Protective gear"},
			Process: []string{
				"Start with the thinnest boards and proper breaking technique review",
				"Each student completes successful break before advancing to next thickness",
				"Emphasize power coming from proper technique, not force",
				"Celebrate each level of success before moving to the next challenge",
				"Group reflection on how confidence built through progressive success",
			},
			AgeGroup:        lifeskill.AgeGroupAll,
			InstructorNotes: "Ensure every student experiences success. Adjust board thickness as needed to maintain positive progression.",
		},
		{
			ID:        "confidence-exercise-3",
			Title:     "Confident Communication Circle",
			Type:      lifeskill.ExerciseFoundational,
			Duration:  15,
			Materials: []string{"Open space for circle formation"},
			Process: []string{
				"Students sit in circle and practice confident speaking posture",
				"Each person shares one martial arts goal with strong, clear voice",
				"Group practices active listening and positive feedback",
				"Practice making eye contact while speaking and listening",
				"End with group affirmation of each person's stated goals",
			},
			AgeGroup:        lifeskill.AgeGroupAll,
			InstructorNotes: "Model confident body language and speaking. Encourage students but don't force participation from shy students.",
		},
		{
			ID:        "confidence-exercise-4",
			Title:     "Fear to Focus Sparring",
			Type:      lifeskill.ExerciseAdvanced,
			Duration:  30,
			Materials: []string{"Protective sparring gear", "Timer"},
			Process: []string{
				"Students identify one technique they feel less confident about in sparring",
				"Partner drills focused on that technique with graduated intensity",
				"Light sparring rounds where students focus only on their chosen technique",
				"After each round, partners give specific positive feedback",
				"Final round using the technique confidently in free sparring",
				"Group discussion on how focused practice built confidence",
			},
			AgeGroup:        lifeskill.AgeGroupTeen,
			InstructorNotes: "Emphasize safety and gradual intensity increase. Match students by skill level and temperament.",
		},
		{
			ID:        "confidence-exercise-5",
			Title:     "Leadership Confidence Mentoring",
			Type:      lifeskill.ExerciseAdvanced,
			Duration:  45,
			Materials: []string{"Basic techniques demonstration list", "Teaching rotation schedule"},
			Process: []string{
				"Senior students are paired with newer students as mentees",
				"Mentors teach a basic technique they have mastered",
				"Focus on clear instruction, patience, and encouragement",
				"Mentees practice and provide feedback on teaching effectiveness",
				"Rotate partnerships so everyone experiences both roles",
				"Reflection on how teaching builds confidence and how confidence helps teaching",
			},
			AgeGroup:        lifeskill.AgeGroupAdult,
			InstructorNotes: "This builds confidence through competence demonstration and service to others. Supervise closely to ensure positive interactions.",
		},
	},
}
