package content

import "github.com/pmma/lifeskills/internal/lifeskill"

var disciplineTraining = lifeskill.LifeSkill{
	ID:          "discipline",
	Title:       "Discipline",
	Slug:        "discipline",
	Description: "Master self-control and consistent practice habits, developing the inner strength to choose long-term growth over short-term comfort.",
	Parable: lifeskill.Parable{
		Title: "The Two Gardens",
		Content: `Two students, Alex and Jordan, each received a small plot of land behind the dojo to create their own training gardens. Master Williams explained that they would tend these gardens for one year, and the results would teach them about discipline.

Alex was excited and immediately planted dozens of different seeds - flowers, vegetables, herbs, and fruit trees. "I want everything!" Alex declared, working furiously for the first week, watering enthusiastically and imagining the spectacular garden that would emerge.

Jordan took a different approach, carefully selecting just a few types of plants and spending time researching their needs. Jordan created a simple schedule: water every morning before class, weed for fifteen minutes every evening, and add compost once a week.

After the initial burst of enthusiasm, Alex's visits to the garden became sporadic. "I'll do extra watering tomorrow to make up for missing today," Alex would say. Soon, weeds choked out the plants, and inconsistent watering killed many seedlings.

Meanwhile, Jordan quietly maintained the daily routine. Rain or shine, before every martial arts class, Jordan could be found in the garden for exactly fifteen minutes. No drama, no grand gestures - just consistent, purposeful action.

"It's not fair," Alex complained to Master Williams. "Jordan has natural talent for gardening, but I work so much harder when I'm out there!"

Master Williams smiled gently. "Alex, you confuse intensity with discipline. Discipline isn't about working harder in bursts. It's about showing up consistently, especially when you don't feel like it. Motivation gets you started, but discipline keeps you going when motivation fades."

At the end of the year, Jordan's garden was a testament to steady progress - healthy plants bearing fruit, rich soil, and a sustainable system that required less effort to maintain than it did to create.

Alex looked at the comparison with new understanding. "Sensei, I see now. I was trying to rely on my feelings to guide my actions. But discipline means my actions guide my feelings, not the other way around."

Master Williams smiled. "Now you understand the secret of mastery. It's not the dramatic techniques that make a master - it's the discipline to practice basic movements thousands of times until they become as natural as breathing."`,
		TeachingPoints: []string{
			"Discipline bridges the gap between motivation and habit",
			"Consistent small actions compound into extraordinary results over time",
			"True discipline means showing up especially when you don't feel like it",
			"Intensity without consistency leads to burnout and inconsistent progress",
			"Discipline creates its own motivation through the satisfaction of steady progress",
		},
	},
	Explanations: lifeskill.AgeTierExplanations{
		Young: lifeskill.Explanation{
			Definition: "Discipline is like being a superhero who has a special power to do the right thing even when it's hard or boring. It's choosing to practice your martial arts moves every day, even when you'd rather play video games!",
			KeyConcepts: []string{
				"Discipline helps us choose what's good for us over what feels fun right now",
				"It's like brushing your teeth - we do it every day even when we don't want to",
				"The more we practice discipline, the stronger it gets, just like a muscle",
				"Disciplined kids become really good at things because they never give up practicing",
				"It feels really good when we keep our promises to ourselves about practicing",
			},
		},
		Teen: lifeskill.Explanation{
			Definition: "Discipline is the ability to control your impulses and maintain consistent effort toward long-term goals, even when faced with distractions or immediate gratification. It's the foundation that transforms dreams into achievements.",
			KeyConcepts: []string{
				"Discipline creates freedom by building skills that open future opportunities",
				"It's about training yourself to do what needs to be done, regardless of mood",
				"Small daily choices compound into major life changes over time",
				"Discipline in martial arts builds discipline in academics, relationships, and personal goals",
				"Self-respect grows when you consistently keep commitments to yourself",
			},
		},
		Adult: lifeskill.Explanation{
			Definition: "Discipline represents the conscious cultivation of consistent behavior aligned with one's values and long-term objectives. It encompasses self-regulation, delayed gratification, and the wisdom to prioritize significance over urgency in daily choices.",
			KeyConcepts: []string{
				"Discipline is the cornerstone of personal integrity and professional excellence",
				"It involves creating systems and habits that reduce reliance on willpower alone",
				"True discipline balances structure with adaptability and self-compassion",
				"It serves as a model for others and creates positive ripple effects in communities",
				"Discipline in practice becomes wisdom in decision-making and strength in adversity",
			},
		},
	},
	Quotes: []lifeskill.Quote{
		{
			ID:          "discipline-quote-1",
			Text:        "Discipline is the bridge between goals and accomplishment.",
			Author:      "Jim Rohn",
			Application: "In martial arts, discipline transforms the desire to improve into actual skill development.",
			Category:    lifeskill.CategoryLeadership,
		},
		{
			ID:          "discipline-quote-2",
			Text:        "The successful warrior is the average person with laser-like focus.",
			Author:      "Bruce Lee",
			Application: "Disciplined focus on fundamentals creates martial arts mastery over time.",
			Category:    lifeskill.CategoryMartialArts,
		},
		{
			ID:          "discipline-quote-3",
			Text:        "What we plant in the soil of contemplation, we shall reap in the harvest of action.",
			Author:      "Meister Eckhart",
			Application: "Disciplined mental preparation leads to confident physical execution in martial arts.",
			Category:    lifeskill.CategoryPhilosophy,
		},
		{
			ID:          "discipline-quote-4",
			Text:        "Freedom is the only worthy goal in life. It is won by disregarding things that lie beyond our control.",
			Author:      "Epictetus",
			Application: "Discipline focuses energy on what we can control - our effort, attitude, and consistency.",
			Category:    lifeskill.CategoryPhilosophy,
		},
		{
			ID:          "discipline-quote-5",
			Text:        "The way of the warrior is to stop trouble before it starts.",
			Author:      "Miyamoto Musashi",
			Application: "Disciplined training prevents problems by building strength before challenges arise.",
			Category:    lifeskill.CategoryMartialArts,
		},
		{
			ID:          "discipline-quote-6",
			Text:        "Excellence is never an accident. It is always the result of high intention, sincere effort, and intelligent execution.",
			Author:      "Aristotle",
			Application: "Disciplined practice with clear intention creates excellence in martial arts and life.",
			Category:    lifeskill.CategoryLeadership,
		},
	},
	Lessons: []lifeskill.Lesson{
		{
			ID:          "discipline-lesson-1",
			Title:       "Building Systems vs. Relying on Willpower",
			Description: "Learn how to create sustainable habits and routines that make discipline easier and more automatic.",
			AgeGroup:    lifeskill.AgeGroupAll,
		},
		{
			ID:          "discipline-lesson-2",
			Title:       "The Compound Effect of Small Actions",
			Description: "Understand how tiny, consistent efforts create massive results over time in martial arts and life.",
			AgeGroup:    lifeskill.AgeGroupAll,
		},
		{
			ID:          "discipline-lesson-3",
			Title:       "Delayed Gratification and Long-term Thinking",
			Description: "Develop the ability to choose long-term benefits over immediate pleasure or comfort.",
			AgeGroup:    lifeskill.AgeGroupTeen,
		},
		{
			ID:          "discipline-lesson-4",
			Title:       "Making Practice Fun and Rewarding",
			Description: "Discover ways to enjoy disciplined practice and celebrate small victories along the way.",
			AgeGroup:    lifeskill.AgeGroupYoung,
		},
		{
			ID:          "discipline-lesson-5",
			Title:       "Discipline as Leadership and Service",
			Description: "Explore how personal discipline enables you to serve others and lead by example.",
			AgeGroup:    lifeskill.AgeGroupAdult,
		},
	},
	Exercises: []lifeskill.Exercise{
		{
			ID:        "discipline-exercise-1",
			Title:     "The 10-Minute Morning Ritual",
			Type:      lifeskill.ExerciseFoundational,
			Duration:  10,
			Materials: []string{"Timer", "Basic martial arts space"},
			Process: []string{
				"Students commit to a 10-minute morning practice routine",
				"Include 3 minutes of basic stretching and breathing",
				"Practice 5 minutes of fundamental techniques",
				"End with 2 minutes of mental preparation/intention setting",
				"Track consistency for 30 days using a simple calendar check-off system",
				"Weekly group sharing about challenges and successes",
			},
			AgeGroup:        lifeskill.AgeGroupAll,
			InstructorNotes: "Start small to build confidence. Focus on consistency over perfection. Help students problem-solve obstacles.",
		},
		{
			ID:        "discipline-exercise-2",
			Title:     "Progressive Focus Training",
			Type:      lifeskill.ExercisePhysical,
			Duration:  20,
			Materials: []string{"Various distractions (music, conversations, visual distractions)", "Basic training equipment"},
			Process: []string{
				"Start with basic technique practice in quiet environment",
				"Gradually add distractions (background conversations, music, movement)",
				"Students practice maintaining form and focus despite distractions",
				"Increase complexity of distractions over multiple sessions",
				"Debrief on strategies that helped maintain discipline and focus",
				"Apply lessons to handling distractions in daily life",
			},
			AgeGroup:        lifeskill.AgeGroupAll,
			InstructorNotes: "Build gradually. Some students may be sensitive to certain distractions. Emphasize internal focus techniques.",
		},
		{
			ID:        "discipline-exercise-3",
			Title:     "The Discipline Contract",
			Type:      lifeskill.ExerciseFoundational,
			Duration:  15,
			Materials: []string{"Printed contracts", "Pens", "Goal-setting worksheets"},
			Process: []string{
				"Students write personal discipline contracts with specific, measurable goals",
				"Include daily, weekly, and monthly commitments to martial arts practice",
				"Sign contracts in front of training partners who serve as accountability partners",
				"Weekly check-ins with partners about contract progress",
				"Monthly contract review and adjustment sessions",
				"Celebrate contract completion with recognition and new goal setting",
			},
			AgeGroup:        lifeskill.AgeGroupAll,
			InstructorNotes: "Help students set realistic goals. Emphasize process goals over outcome goals. Make contracts positive and empowering.",
		},
		{
			ID:        "discipline-exercise-4",
			Title:     "Resistance and Recovery Sparring",
			Type:      lifeskill.ExerciseAdvanced,
			Duration:  25,
			Materials: []string{"Protective sparring gear", "Timer", "Intensity variation cards"},
			Process: []string{
				"Students engage in sparring rounds with varying intensity levels",
				"Include fatigue-inducing exercises between rounds",
				"Practice maintaining technique quality when tired or frustrated",
				"Focus on emotional regulation and consistent effort despite physical discomfort",
				"Debrief on mental strategies used to maintain discipline under pressure",
				"Connect experience to maintaining discipline in challenging life situations",
			},
			AgeGroup:        lifeskill.AgeGroupTeen,
			InstructorNotes: "Monitor closely for safety. Emphasize technique over power. Help students recognize their emotional patterns under stress.",
		},
		{
			ID:        "discipline-exercise-5",
			Title:     "Mentorship Discipline Chain",
			Type:      lifeskill.ExerciseAdvanced,
			Duration:  30,
			Materials: []string{"Training schedules", "Progress tracking sheets", "Mentorship guidelines"},
			Process: []string{
				"Senior students commit to mentoring newer students in discipline habits",
				"Mentors model consistent practice and help mentees develop personal routines",
				"Create chains of accountability where discipline success helps the entire group",
				"Monthly group presentations on discipline challenges and breakthroughs",
				"Mentors practice leading by example rather than just giving advice",
				"Evaluate how teaching discipline strengthens personal discipline",
			},
			AgeGroup:        lifeskill.AgeGroupAdult,
			InstructorNotes: "Match mentors and mentees thoughtfully. Provide mentor training on encouragement vs. criticism. Focus on service aspect.",
		},
	},
}
