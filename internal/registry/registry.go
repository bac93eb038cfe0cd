package registry

import "boardpulse/internal/domains"

// AgreeOptions is the five-level agreement scale shared by every
// likert_agree question, ordered from the highest score to the lowest.
var AgreeOptions = []string{
	"Strongly Agree",
	"Agree",
	"Neutral",
	"Disagree",
	"Strongly Disagree",
}

// RatingOptions is the numeric five-point scale for rating_5 questions.
var RatingOptions = []string{"1", "2", "3", "4", "5"}

func likert(key, label string, displayNumber int, subheading ...string) domains.SurveyQuestion {
	q := domains.SurveyQuestion{
		Key:           key,
		Label:         label,
		Type:          domains.QuestionLikertAgree,
		Required:      true,
		Options:       AgreeOptions,
		DisplayNumber: displayNumber,
	}
	if len(subheading) > 0 {
		q.Subheading = subheading[0]
	}
	return q
}

func longText(key, label string, subheading ...string) domains.SurveyQuestion {
	q := domains.SurveyQuestion{
		Key:   key,
		Label: label,
		Type:  domains.QuestionLongText,
	}
	if len(subheading) > 0 {
		q.Subheading = subheading[0]
	}
	return q
}

func rating(key, label string) domains.SurveyQuestion {
	return domains.SurveyQuestion{
		Key:      key,
		Label:    label,
		Type:     domains.QuestionRating5,
		Required: true,
		Options:  RatingOptions,
	}
}

func strengthRating(key, label string, subheading ...string) domains.SurveyQuestion {
	q := domains.SurveyQuestion{
		Key:     key,
		Label:   label,
		Type:    domains.QuestionRating5,
		Options: RatingOptions,
	}
	if len(subheading) > 0 {
		q.Subheading = subheading[0]
	}
	return q
}

var surveys = []domains.SurveyDefinition{
	{
		Slug:        "board-evaluation",
		Title:       "Board Evaluation Questionnaire",
		Description: "Assess board composition, governance framework, processes, and strategic oversight.",
		Sections: []domains.SurveySection{
			{
				Title: "Section A: Governance Framework",
				Questions: []domains.SurveyQuestion{
					likert("board_composition_diverse_mix", "Does the board possess a diverse mix of skills and experiences (i.e. the necessary expertise and diversity to effectively oversee the organisation)?", 1, "Board Composition"),
					likert("board_diversity_reflect", "Do you agree that the board reflect a diversity of gender, ethnicity, perspectives, experiences and backgrounds?", 2, "Board Diversity"),
					likert("board_diversity_importance", "Diversity is important to the board’s strategic goals.", 3),
					likert("board_composition_aligns", "Does the current composition aligns with the skills and expertise needed for effective governance?", 4),
					likert("board_guidelines_appointment", "There are clear guidelines for the appointment and removal of board members.", 5),
					likert("board_size_appropriate", "The current size of the board is appropriate in relation to the complexity of the organization.", 6, "Board Structure"),
					likert("board_size_effective", "The board's size allows for effective decision-making and diverse viewpoints.", 7),
					likert("board_understands_roles", "The board understands its roles and responsibilities.", 8, "Competence (Understanding of Roles and Responsibilities)"),
					likert("board_induction_training", "Board members undergo induction and are provided with ongoing training and development opportunities.", 9, "Induction & Training"),
					likert("chairperson_facilitates", "The chairperson effectively facilitates board meetings and discussions.", 10, "Role of Chairperson"),
					likert("chairperson_participation", "The chairperson encourages active participation from all board members.", 11),
					likert("board_effective_governance", "The board is effective in fulfilling its governance responsibilities.", 12, "Overall Effectiveness"),
					likert("committees_charters", "Board Committees have their respective Committee Charters, which provide guidance on their structure, functions, authority and duties in line with Principle 11.1.3 of the NCCG.", 13, "Board Committees"),
					likert("committees_understanding", "Board members adequately understand the roles and responsibilities of each committee.", 14),
					likert("committees_effective", "Board committees function effectively.", 15),
					likert("committees_report_back", "Committees frequently report back to the full board.", 16),
					likert("committees_integrate", "Board committees effectively integrate with the overall board structure and decision-making processes.", 17, "Integration of Committees"),
					likert("independent_directors_number", "The board has an adequate number of independent directors.", 18, "Independence"),
					likert("independent_directors_contribute", "Independent directors contribute to board effectiveness to a large extent.", 19),
				},
			},
			{
				Title: "Section B: Board Processes",
				Questions: []domains.SurveyQuestion{
					likert("meetings_frequency", "Meetings are held regularly and at appropriate intervals.", 20, "Frequency"),
					likert("meeting_materials", "Board members receive meeting materials in advance to prepare adequately.", 21, "Preparation"),
					likert("agenda_clarity", "Meeting agendas are clear, relevant, and strategically focused.", 22, "Agenda Setting"),
					likert("attendance_rate", "The attendance rate of board members at meetings is always good.", 23, "Attendance"),
					likert("meeting_effectiveness", "Board meetings are scheduled timely and conducted efficiently.", 24, "Meeting Effectiveness"),
					likert("company_secretary_experience", "The Company Secretary also possesses requisite experience and qualifications to effectively carry out assigned duties, in line with Principle 8.1 of the NCCG.", 25, "Company Secretariat"),
					likert("company_secretary_senior_staff", "The Company Secretary is a Senior Management staff of the Company as required by Principle 8.2 of the NCCG.", 26),
					likert("company_secretary_assists", "In line with Principle 8.6.3 of the NCCG, the Company Secretary assists the Chairman and the MD/CEO in coordinating the activities of the Board.", 27),
					likert("information_flow", "Relevant information is provided to the board in a timely manner.", 28, "Information Flow"),
					likert("decision_making", "Decisions are made clearly and communicated to relevant stakeholders timely and appropriately.", 29, "Decision-Making Process"),
					likert("consensus_building", "There is a process for fostering participation and consensus in decision making.", 30, "Consensus Building"),
					likert("conflict_resolution_process", "There a clear process for addressing conflicts of interest.", 31, "Conflict Resolution"),
					longText("conflict_resolution_suggestion", "If not, suggest a possible process for addressing conflicts of interests."),
					likert("conflict_handling", "The board handles conflicts or disagreements, if any, effectively.", 32),
				},
			},
			{
				Title: "Section C: Performance Review",
				Questions: []domains.SurveyQuestion{
					likert("board_self_assessment", "The board frequently reviews its own performance and effectiveness.", 33, "Self-Assessment"),
					likert("director_contribution", "Each director contributes effectively to board discussions and decision-making.", 34, "Individual Directors Assessment"),
					likert("directors_engaged", "Directors are engaged and active participants in meetings.", 35),
				},
			},
			{
				Title: "Section D: Communication and Reporting",
				Questions: []domains.SurveyQuestion{
					likert("transparency", "Board activities and decisions are transparent to stakeholders.", 36, "Transparency"),
					likert("whistleblowing", "There is a structured process for whistleblowing/providing feedback to board members.", 37, "Feedback/Whistleblowing Mechanism"),
				},
			},
			{
				Title: "Section E: Stakeholder Engagement",
				Questions: []domains.SurveyQuestion{
					likert("stakeholder_interests", "The board considers stakeholders’ interests in decision-making.", 38, "Stakeholder Interests"),
					likert("stakeholder_engagement", "The board engages well with shareholders and other stakeholders to gather insights and feedback.", 39),
					likert("management_collaboration", "The board communicates and collaborates well and effectively with executive management.", 40),
				},
			},
			{
				Title: "Section F: Strategic Oversight",
				Questions: []domains.SurveyQuestion{
					likert("vision_strategy", "The board sets a clear and compelling vision for the organization.", 41, "Vision and Strategy"),
					likert("strategic_oversight", "The board effectively manages and oversees the organisation’s strategic direction.", 42, "Strategic Oversight"),
					likert("goal_setting", "There are clear goals and objectives set for the board and its committees.", 43, "Goal Setting"),
					likert("succession_plan", "The board has a formal succession plan for key positions.", 44, "Succession Planning"),
					likert("succession_plan_review", "The board reviews and updates this succession plan regularly.", 45),
					likert("resource_allocation", "The board reviews and approves resource allocation to support its strategic goals.", 46, "Resource Allocation"),
				},
			},
			{
				Title: "Section G: Compliance & Risk Management",
				Questions: []domains.SurveyQuestion{
					likert("compliance_legal", "The board effectively and routinely ensures compliance with regulatory and legal requirements.", 47, "Compliance and Risk Management"),
					likert("risk_management", "The board effectively oversees the company’s risk management processes and policies.", 48, "Regulatory Compliance"),
					likert("governance_framework", "The governance framework are well aligned with best practices and regulatory requirements.", 49, "Governance Framework"),
					likert("regulatory_knowledge", "The board is knowledgeable about relevant laws and regulations affecting the organisation.", 50),
				},
			},
			{
				Title: "Section H: Recommendations",
				Questions: []domains.SurveyQuestion{
					longText("improvement_areas", "What areas of the company’s board governance could be improved?", "Improvement Areas"),
					longText("additional_comments", "Any other comments or suggestions?", "Additional Comments"),
				},
			},
		},
	},
	{
		Slug:        "peer-evaluation",
		Title:       "Directors’ Peer-to-Peer Evaluation Questionnaire",
		Description: "Assess individual director effectiveness against corporate governance standards.",
		Sections: []domains.SurveySection{
			{
				Title: "Section A - Respondent Context",
				Questions: []domains.SurveyQuestion{
					{Key: "evaluation_date", Label: "Date", Type: domains.QuestionDate, Required: true},
					{
						Key:           "director_being_evaluated",
						Label:         "Director Being Evaluated",
						Type:          domains.QuestionSingleSelect,
						Required:      true,
						DisplayNumber: 1,
						Options: []string{
							"Mr. Samuel Durojaye (Chairman)",
							"Mrs. Oluyemisi Dawodu",
							"Dr. Remilekun Bakare",
							"Mr. Adesina Towolawi",
							"Mr. Otunba Adewale Jubril",
							"Esv. Akinwale Ojo",
							"Arc. Abiodun Fari-Arole",
							"Mrs. Ronke Akinleye",
							"Mr. Rotimi Olashore",
							"Mr. Olawale Osisanya",
						},
					},
					{Key: "committee_worked_with", Label: "Committee(s) worked with this Director", Type: domains.QuestionShortText},
					{
						Key:           "years_interacting",
						Label:         "Years interacting with this Director",
						Type:          domains.QuestionSingleSelect,
						DisplayNumber: 2,
						Options:       []string{"<1", "1–3", "3–5", ">5"},
					},
				},
			},
			{
				Title:       "SECTION B — BOARD EFFECTIVENESS & RESPONSIBILITIES",
				Description: "(Reflects board duties, including oversight, strategy and governance)",
				Questions: []domains.SurveyQuestion{
					rating("b1_prepared", "Comes prepared, understanding agenda items and reports."),
					rating("b2_contributes_strategy", "Actively contributes to strategic discussions."),
					rating("b3_understands_risks", "Demonstrates deep understanding of mortgage banking risks and business issues."),
					rating("b4_sustainability", "Ensures decisions consider long-term sustainability, risk, and regulatory compliance."),
					rating("b5_regulatory_knowledge", "Demonstrates knowledge of applicable laws, policies, and CBN governance expectations."),
					longText("b_optional_comments", "Optional Comments: _________________"),
				},
			},
			{
				Title: "SECTION C — GOVERNANCE, RISK & COMPLIANCE OVERSIGHT",
				Questions: []domains.SurveyQuestion{
					rating("c1_risk_controls", "Provides robust oversight of risk management and internal controls"),
					rating("c2_compliance_culture", "Supports a strong culture of compliance and ethical standards"),
					rating("c3_compliance_discussions", "Engages constructively in compliance discussions and risk mitigation"),
					rating("c4_balance_oversight", "Promotes a balance between oversight and respect for management’s role"),
					rating("c5_risk_controls_repeat", "Provides robust oversight of risk management and internal controls"),
					longText("c_optional_comments", "Optional Comments: _________________"),
				},
			},
			{
				Title:       "SECTION D — INDEPENDENCE, INTEGRITY & COLLISION AVOIDANCE",
				Description: "(Reflects expectations on director independence, integrity, and effective governance behaviour)",
				Questions: []domains.SurveyQuestion{
					rating("d1_independence", "Demonstrates independence of thought and judgement"),
					rating("d2_integrity", "Upholds integrity in all interactions with Board & stakeholders"),
					rating("d3_conflicts", "Manages conflicts of interest effectively"),
					rating("d4_confidentiality", "Respects confidentiality and Board protocols"),
					rating("d5_independence_repeat", "Demonstrates independence of thought and judgement"),
					longText("d_optional_comments", "Optional Comments: _________________"),
				},
			},
			{
				Title:       "SECTION E — ENGAGEMENT & TEAM DYNAMICS",
				Description: "(Behavioral aspects key to effective boards, as reinforced in governance practice)",
				Questions: []domains.SurveyQuestion{
					rating("e1_collaboration", "Works collaboratively with fellow directors"),
					rating("e2_challenges", "Challenges ideas constructively without undermining consensus"),
					rating("e3_adds_value", "Adds value to discussions during committee and plenary sessions"),
					longText("e_optional_comments", "Optional Comments: _________________"),
				},
			},
			{
				Title:       "SECTION F — MANAGEMENT ENGAGEMENT & OVERSIGHT",
				Description: "(Aligned with governance but respects management’s role)",
				Questions: []domains.SurveyQuestion{
					rating("f1_accountable", "Holds management accountable for performance and compliance"),
					rating("f2_supports_management", "Supports management with insight without micromanaging"),
					rating("f3_constructive_feedback", "Provides constructive feedback for improvement"),
					longText("f_optional_comments", "Optional Comments: _________________"),
				},
			},
			{
				Title:       "SECTION G — OVERALL PERFORMANCE & REAPPOINTMENT",
				Description: "(For cumulative assessment)",
				Questions: []domains.SurveyQuestion{
					strengthRating("g_strengths_strategic_vision", "1a Strategic vision", "1. Key strengths:"),
					strengthRating("g_strengths_long_term_thinking", "1b Long term thinking"),
					strengthRating("g_strengths_adaptability", "1c Adaptability"),
					strengthRating("g_strengths_financial_literacy", "2a Financial literacy"),
					strengthRating("g_strengths_financial_metrics", "2b Understands financial metrics"),
					strengthRating("g_strengths_budget_oversight", "2c Budget oversight"),
					strengthRating("g_strengths_governance_compliance", "3a Governance & Compliance"),
					strengthRating("g_strengths_regulatory_knowledge", "3b Regulatory knowledge"),
					strengthRating("g_strengths_risk_management", "3c Risk Management"),
					strengthRating("g_strengths_leadership", "4a Leadership & Influence"),
					strengthRating("g_strengths_communication", "4b Effective Communication"),
					strengthRating("g_strengths_team_player", "4c Team Player"),
					strengthRating("g_strengths_decision_making", "5a Decision Making"),
					strengthRating("g_strengths_data_driven", "5b Data-driven approach"),
					strengthRating("g_strengths_judgement", "5c Judgement & insight"),
					strengthRating("g_strengths_stakeholder_engagement", "6a Stakeholder Engagement"),
					strengthRating("g_strengths_relationship_management", "6b Relationship management"),
					strengthRating("g_strengths_listening_skills", "6c Listening skills"),
					strengthRating("g_strengths_innovation", "7a Innovation & Change Management"),
					strengthRating("g_strengths_fostering_innovation", "7b Fostering innovation"),
					strengthRating("g_strengths_change_adaptability", "7c Change adaptability"),
					strengthRating("g_strengths_accountability", "8a Accountability & Integrity"),
					strengthRating("g_strengths_ethical_leadership", "8b Ethical leadership"),
					strengthRating("g_strengths_responsiveness", "8c Responsiveness"),
					strengthRating("g_strengths_continuous_learning", "9a Continuous Learning"),
					strengthRating("g_strengths_commitment_development", "9b Commitment to development"),
					strengthRating("g_strengths_embraces_feedback", "9c Embraces feedback"),
					longText("g_development_areas", "2. Suggest areas for development:"),
					{
						Key:     "g_overall_rating",
						Label:   "3. Overall performance rating:",
						Type:    domains.QuestionSingleSelect,
						Options: []string{"Poor", "Fair", "Good", "Very Good", "Excellent"},
					},
					{
						Key:     "g_reappoint",
						Label:   "4. Recommend re-appointment?",
						Type:    domains.QuestionSingleSelect,
						Options: []string{"Yes", "Yes with development support", "No"},
					},
					longText("g_optional_comments", "Optional Comments: _________________"),
				},
			},
			{
				Title:       "SECTION H — DEVELOPMENT & TRAINING NEEDS",
				Description: "(Training areas that promote compliance and board effectiveness)",
				Questions: []domains.SurveyQuestion{
					{
						Key:   "h_training_needs",
						Label: "Please tick any recommended areas for this Director",
						Type:  domains.QuestionMultiSelect,
						Options: []string{
							"Regulatory updates & CBN governance expectations",
							"Risk & compliance management",
							"Advanced mortgage portfolio oversight",
							"Board leadership & governance best practices",
							"Digital transformation and cyber security oversight",
						},
					},
				},
			},
		},
	},
}

// Surveys returns every configured survey definition in display order.
// Definitions are static configuration, loaded once and never mutated.
func Surveys() []domains.SurveyDefinition {
	return surveys
}

// GetSurveyBySlug resolves a survey by normalized slug so that historical
// variants like "Board_Evaluation" and "board-evaluation" match the same
// definition. The boolean reports whether a definition was found.
func GetSurveyBySlug(slug string) (domains.SurveyDefinition, bool) {
	normalized := Normalize(slug)
	for _, survey := range surveys {
		if Normalize(survey.Slug) == normalized {
			return survey, true
		}
	}
	return domains.SurveyDefinition{}, false
}

// CanonicalSlug maps any slug variant to the definition's own slug, or
// returns the input unchanged when no definition matches.
func CanonicalSlug(raw string) string {
	if survey, ok := GetSurveyBySlug(raw); ok {
		return survey.Slug
	}
	return raw
}
