package domain

// Enumerations are string-typed: the schema stores enum names, not integer
// codes, so the Go value, the column value and the JSON value are the same.

type ContactType string

const (
	ContactNone      ContactType = "None"
	ContactPhone     ContactType = "Phone"
	ContactEmail     ContactType = "Email"
	ContactTelegram  ContactType = "Telegram"
	ContactWhatsApp  ContactType = "WhatsApp"
	ContactLinkedIn  ContactType = "LinkedIn"
	ContactGithub    ContactType = "Github"
	ContactPortfolio ContactType = "Portfolio"
	ContactOther     ContactType = "Other"
)

type FileType string

const (
	FileNone          FileType = "None"
	FileProfileAvatar FileType = "ProfileAvatar"
	FileResume        FileType = "Resume"
	FileCoverLetter   FileType = "CoverLetter"
	FileCertificate   FileType = "Certificate"
	FilePortfolioWork FileType = "PortfolioWork"
	FileOther         FileType = "Other"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyRUB Currency = "RUB"
	CurrencyKZT Currency = "KZT"
	CurrencyUZS Currency = "UZS"
	CurrencyGEL Currency = "GEL"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "FullTime"
	EmploymentPartTime   EmploymentType = "PartTime"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentFreelance  EmploymentType = "Freelance"
	EmploymentInternship EmploymentType = "Internship"
)

type WorkModel string

const (
	WorkModelOffice WorkModel = "Office"
	WorkModelRemote WorkModel = "Remote"
	WorkModelHybrid WorkModel = "Hybrid"
)

type WorkSchedule string

const (
	ScheduleStandard     WorkSchedule = "Standard"
	ScheduleFlexible     WorkSchedule = "Flexible"
	ScheduleShiftWork    WorkSchedule = "ShiftWork"
	ScheduleProjectBased WorkSchedule = "ProjectBased"
)

type LanguageLevel string

const (
	LangA1Beginner          LanguageLevel = "A1_Beginner"
	LangA2Elementary        LanguageLevel = "A2_Elementary"
	LangB1Intermediate      LanguageLevel = "B1_Intermediate"
	LangB2UpperIntermediate LanguageLevel = "B2_UpperIntermediate"
	LangC1Advanced          LanguageLevel = "C1_Advanced"
	LangC2Proficiency       LanguageLevel = "C2_Proficiency"
	LangNative              LanguageLevel = "Native"
)

type TestCategory string

const (
	TestHardSkill TestCategory = "HardSkill"
	TestSoftSkill TestCategory = "SoftSkill"
	TestLanguage  TestCategory = "Language"
	TestLogic     TestCategory = "Logic"
	TestGeneral   TestCategory = "General"
)

type ScoreUnit string

const (
	ScorePercent ScoreUnit = "Percent"
	ScorePoints  ScoreUnit = "Points"
	ScoreGrade   ScoreUnit = "Grade"
)

type AssessmentType string

const (
	AssessmentMBTI    AssessmentType = "MBTI"
	AssessmentDISC    AssessmentType = "DISC"
	AssessmentBigFive AssessmentType = "BigFive"
	AssessmentAdizes  AssessmentType = "Adizes"
)

type InteractionStatus string

const (
	InteractionDraft              InteractionStatus = "Draft"
	InteractionSent               InteractionStatus = "Sent"
	InteractionViewed             InteractionStatus = "Viewed"
	InteractionAccepted           InteractionStatus = "Accepted"
	InteractionDeclined           InteractionStatus = "Declined"
	InteractionInterviewScheduled InteractionStatus = "InterviewScheduled"
	InteractionOfferSent          InteractionStatus = "OfferSent"
	InteractionHired              InteractionStatus = "Hired"
	InteractionRejected           InteractionStatus = "Rejected"
)

type CandidateAction string

const (
	ActionNone       CandidateAction = "None"
	ActionAccept     CandidateAction = "Accept"
	ActionDecline    CandidateAction = "Decline"
	ActionAskDetails CandidateAction = "AskDetails"
)

type NewsLevel string

const (
	NewsHotFix       NewsLevel = "HotFix"
	NewsRelease      NewsLevel = "Release"
	NewsUpdate       NewsLevel = "Update"
	NewsAnnouncement NewsLevel = "Announcement"
)

// Roles
const (
	RoleAdmin     = "Admin"
	RoleRecruiter = "Recruiter"
	RoleCandidate = "Candidate"
)
