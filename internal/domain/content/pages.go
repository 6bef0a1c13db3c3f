package content

// WorkplanItem is one entry on the annual workplan timeline.
type WorkplanItem struct {
	Month string
	Date  string
	Title string
	Body  string
}

// Workplan is the published activity calendar for the year.
var Workplan = []WorkplanItem{
	{Month: "Jan", Date: "15", Title: "EXCOM Annual Planning Meeting", Body: "Responsible Body: EXCOM"},
	{Month: "Feb-Apr", Date: "23-06", Title: "Ball Game One Qualifiers", Body: "Covers multiple leagues including Central, Eastern, Western, and Northern regions for both boys and girls."},
	{Month: "Apr", Date: "6-13", Title: "Regional Evaluation Meetings", Body: "Evaluation of Ball Game One Qualifiers. Responsible: Regional Representatives."},
	{Month: "Apr", Date: "19", Title: "Ball Games One & Two Planning", Body: "Evaluation and planning meeting. Responsible Body: EXCOM"},
	{Month: "May", Date: "4-14", Title: "USSSA National Ball Game One", Body: "National championship for qualified schools."},
	{Month: "Jun", Date: "8-29", Title: "Ball Game Two Qualifiers", Body: "7s tournaments including Kabaka Coronation, Kyabazinga, Won Nyaci, and Rwot Adwong cups."},
	{Month: "Jul", Date: "5", Title: "Ball Game Two & AGM Planning", Body: "Evaluation of qualifiers and AGM planning. Responsible Body: EXCOM."},
	{Month: "Jul", Date: "9-18", Title: "USSSA National Ball Game Two", Body: "National 7s championship."},
	{Month: "Aug", Date: "19-27", Title: "FEASSA Games", Body: "Federation of East African Secondary Schools Sports Association games."},
	{Month: "Sep", Date: "6", Title: "Annual General Meeting", Body: "Responsible Body: EXCOM"},
	{Month: "Oct", Date: "9", Title: "Independence Cup", Body: "Tournament celebrating Uganda's independence."},
	{Month: "Dec", Date: "14-20", Title: "Abu Dhabi World Schools Festival", Body: "International exposure for the U20 select team."},
}

// PhotoCollection is one album card on the photos page.
type PhotoCollection struct {
	Title       string
	Description string
	Count       string
	Date        string
}

// PhotoCollections is the published photo album list.
var PhotoCollections = []PhotoCollection{
	{Title: "Tournament 2024", Description: "Inter-school championship matches, finals, and trophy ceremonies.", Count: "150+", Date: "December 2024"},
	{Title: "Training Sessions", Description: "Behind-the-scenes training sessions and skill development.", Count: "80+", Date: "November 2024"},
	{Title: "Award Ceremonies", Description: "Prize giving ceremonies and recognition events.", Count: "60+", Date: "December 2024"},
	{Title: "Team Events", Description: "Social events, team building, and community outreach.", Count: "120+", Date: "October 2024"},
	{Title: "School Visits", Description: "USRA officials visiting member schools and coaching clinics.", Count: "90+", Date: "September 2024"},
}

// AboutMarkdown is the long-form copy for the home page about section.
const AboutMarkdown = `## The USRA Story

Founded in the late 1990s by passionate educators, USRA began as a grassroots
movement to introduce rugby into schools.

What started with a handful of enthusiastic teams has grown into a nationwide
organization overseeing both boys' and girls' rugby across 15s and 7s formats
in primary and secondary schools throughout Uganda.`

// ChairmanMessageMarkdown is the chairman's welcome on the home page.
const ChairmanMessageMarkdown = `*"It is with great pride and excitement that I welcome you to the official
website of the Uganda Schools Rugby Association (USRA). This platform marks a
significant milestone in our journey to grow, promote, and professionalize
school rugby across Uganda."*

**Okello Dickson** — Chairman, Uganda Schools Rugby Association`

// MedicalFundMarkdown is the long-form copy for the athletes medical fund page.
const MedicalFundMarkdown = `## What the Fund Covers

- Immediate medical attention during sanctioned matches or training
- Subsidized treatment and rehabilitation for approved cases
- Collaboration with partner facilities for specialized care

## Eligibility

Players registered with USRA and participating in sanctioned activities are
eligible under the terms and conditions of the fund.

## How to Apply

1. Notify USRA immediately after an incident via your school representative.
2. Submit medical assessment and incident report to USRA.
3. USRA verifies the claim and communicates the next steps.`
