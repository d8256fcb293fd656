package model

// IntroModuleID 介绍模块只有"确认并完成"一个动作
const IntroModuleID = 0

// CatalogModule 课程目录中的固定模块
type CatalogModule struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Authors   string `json:"authors"`
	ThreadURL string `json:"threadUrl"`
	PDFURL    string `json:"pdfUrl,omitempty"`
	Intro     bool   `json:"intro"`
}

var catalog = []CatalogModule{
	{ID: 0, Title: "Start Here: Welcome to The OECD Explorer", Authors: "Course Introduction", ThreadURL: "#", Intro: true},
	{ID: 1, Title: "Exploring Effective Uses of Generative AI in Education: An Overview", Authors: "Stéphan Vincent-Lancrin and Quentin Vidal", ThreadURL: "https://www.linkedin.com/posts/rlethcoe_cognitive-offloading-vs-cognitive-scaffolding-activity-7420107953019645952-sOyR/", PDFURL: "https://drive.google.com/file/d/1M4f9NHq0x4WIzhgLeF0o5AL56LwWnUjQ/view?usp=drive_link"},
	{ID: 2, Title: "Generative AI for Human Skill Development and Assessment", Authors: "Dragan Gašević and Lixiang Yan", ThreadURL: "https://www.linkedin.com/posts/rlethcoe_the-mirage-of-false-mastery-activity-7420468298275860480-4WC7/", PDFURL: "https://drive.google.com/file/d/1Eo537iCYIkEodm2Ht7G5EWm79GyCRIEm/view?usp=drive_link"},
	{ID: 3, Title: "Learning with Dialogue-Based AI Tutors", Authors: "Yuheng Li and Xiangen Hu", ThreadURL: "https://www.linkedin.com/posts/rlethcoe_from-answer-dispenser-to-cognitive-coach-activity-7421207671627776000-5P2g/", PDFURL: "https://drive.google.com/file/d/1rNEuAvDM4oMV7_SgxOHVlJULie9B0_Mj/view?usp=drive_link"},
	{ID: 4, Title: "Fostering Collaborative Learning with AI", Authors: "Sebastian Strauß and Nikol Rummel", ThreadURL: "https://www.linkedin.com/posts/rlethcoe_fostering-collaborative-learning-with-generative-activity-7421564400098140160-hyo_/", PDFURL: "https://drive.google.com/file/d/14PpIhVG4kmMGeINTKl-1T0lUPu_-CGSn/view?usp=drive_link"},
	{ID: 5, Title: "Developing Creativity with Generative AI", Authors: "Interview by Stéphan Vincent-Lancrin and Quentin Vidal", ThreadURL: "https://www.linkedin.com/posts/rlethcoe_developing-creativity-with-generative-ai-activity-7421926336006635520-9dA3/", PDFURL: "https://drive.google.com/file/d/17Yrc60COAPd3mLF_dcyn3qZ_Ng1pesmg/view?usp=drive_link"},
	{ID: 6, Title: "AI in Education Unplugged", Authors: "Interview by Stéphan Vincent-Lancrin and Quentin Vidal", ThreadURL: "https://www.linkedin.com/posts/rlethcoe_ai-in-education-unplugged-activity-7422278648449318912-8hTZ/", PDFURL: "https://drive.google.com/file/d/1rNyYcuWWhHGEN3zEvOTOfr1uJxod4sWs/view?usp=drive_link"},
	{ID: 7, Title: "Framework for Teacher-AI Teaming in Education", Authors: "Mutlu Cukurova", ThreadURL: "https://www.linkedin.com/posts/rlethcoe_a-conceptual-framework-for-teacher-ai-teaming-activity-7422654752078905344-PcJT/", PDFURL: "https://drive.google.com/file/d/1C0d-IXo2OHRwpiJtHs8TaqvbkeCZZwTg/view?usp=drive_link"},
	{ID: 8, Title: "Transitioning to Educational-Oriented Generative AI", Authors: "Paraskevi Topali, Alejandro Ortega-Arranz and Inge Molenaar", ThreadURL: "https://www.linkedin.com/posts/rlethcoe_educational-oriented-generative-activity-7423777592421490688-SLXD/", PDFURL: "https://drive.google.com/file/d/10kw1_rn-T45_-9-1Cr7yGVFR9LdKiYrc/view?usp=drive_link"},
	{ID: 9, Title: "Generative AI as a Teaching Assistant", Authors: "Ryan Baker, Xiner Liu, Mamta Shah, et al.", ThreadURL: "https://www.linkedin.com/posts/rlethcoe_generative-ai-as-a-teaching-assistant-activity-7424092325708226560-j2XY/", PDFURL: "https://drive.google.com/file/d/1ydsIdp1akJZiwUoG_blniwfOg8yoBnxu/view?usp=drive_link"},
	{ID: 10, Title: "Generative AI Tools to Support Teachers", Authors: "Interview by Stéphan Vincent-Lancrin and Quentin Vidal", ThreadURL: "https://www.linkedin.com/posts/rlethcoe_generative-ai-tools-to-support-teachers-activity-7424456804581158912-8wJR/", PDFURL: "https://drive.google.com/file/d/1zSItUj2GFw-kkvNTbJXWbM4O5_W5p5S1/view?usp=drive_link"},
	{ID: 11, Title: "AI in Institutional Workflows", Authors: "Zachary Pardos and Conrad Borchers", ThreadURL: "https://www.linkedin.com/posts/rlethcoe_ai-exposes-the-credit-hour-lie-activity-7424828566330253312-2aWu/", PDFURL: "https://drive.google.com/file/d/1TtAFE_2qQ7MkvO25srr8ZaP1i0R8h6Xs/view?usp=drive_link"},
	{ID: 12, Title: "Generative AI for Standardised Assessments", Authors: "Interview by Stéphan Vincent-Lancrin and Quentin Vidal", ThreadURL: "https://www.linkedin.com/posts/rlethcoe_generative-ai-for-standardized-assessments-activity-7425179448464814080-LVDl/", PDFURL: "https://drive.google.com/file/d/1tUySEt2b2L51wcXKwVCVfZQLwps7kmqk/view?usp=drive_link"},
	{ID: 13, Title: "Generative AI and Transformation of Scientific Research", Authors: "Dominique Guellec and Stéphan Vincent-Lancrin", ThreadURL: "https://www.linkedin.com/posts/rlethcoe_how-generative-ai-is-transforming-scientific-activity-7425545051969183744-eplo/", PDFURL: "https://drive.google.com/file/d/1UGFQfuZ3-tWfs7Cr5pS8Dtf0Ocbs0gPr/view?usp=drive_link"},
}

// Catalog returns a copy of the fixed module catalog in id order.
func Catalog() []CatalogModule {
	return append([]CatalogModule(nil), catalog...)
}

func FindModule(id int) (CatalogModule, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return CatalogModule{}, false
}

func CatalogSize() int {
	return len(catalog)
}

// ReflectionQuestions 构建步骤中的三个反思问题
var ReflectionQuestions = [ReflectionCount]string{
	"NotebookLM knows the chapter. It doesn't know your students, your program, or your Monday morning. What did you have to add, cut, or reframe to make this actually useful for your newsletter audience -- and how did you decide that?",
	"Before you finalized your infographic or article, did you go back to the actual PDF to confirm anything NotebookLM pulled -- and if so, what triggered that instinct? If not, what would have made you want to check?",
	"If a colleague asked you to explain the main idea from this chapter at lunch tomorrow, would you reach for your infographic -- or do you actually know it well enough to just talk about it? What does your answer tell you?",
}
