package content

// Event categories.
const (
	CategoryAll           = "all"
	CategoryTournament    = "tournaments"
	CategoryMeeting       = "meetings"
	CategoryNational      = "national"
	CategoryInternational = "international"
	CategorySpecial       = "special"
)

// Event timelines.
const (
	TimelineAll      = "all"
	TimelineUpcoming = "upcoming"
	TimelineCurrent  = "current"
	TimelinePast     = "past"
)

// Categories lists the selectable category filters, in display order.
var Categories = []string{CategoryAll, CategoryTournament, CategoryMeeting, CategoryNational, CategoryInternational, CategorySpecial}

// Timelines lists the selectable timeline filters, in display order.
var Timelines = []string{TimelineUpcoming, TimelinePast, TimelineAll}

// Event is one calendar entry on the events page.
type Event struct {
	ID          int
	Title       string
	Date        string
	Location    string
	Description string
	Category    string
	Timeline    string
	Badge       string
	Responsible string
	Leagues     []string
}

// Events is the association's activity calendar, newest first.
var Events = []Event{
	{ID: 10, Title: "Annual General Meeting", Date: "September 6, 2025", Location: "USRA Headquarters, Kampala", Description: "Annual general meeting to review the year's achievements and plan for the future.", Category: CategoryMeeting, Timeline: TimelineCurrent, Badge: "Happening Today", Responsible: "EXCOM"},
	{ID: 11, Title: "Independence Cup", Date: "October 9, 2025", Location: "Kampala - Venue TBA", Description: "Special tournament celebrating Uganda's independence with participation from all regions.", Category: CategorySpecial, Timeline: TimelineUpcoming, Badge: "Next Event", Responsible: "All Regional Representatives"},
	{ID: 12, Title: "Abu Dhabi World Schools Festival", Date: "December 14-20, 2025", Location: "Abu Dhabi, UAE", Description: "Elite international schools rugby festival featuring Uganda's U20 select team.", Category: CategoryInternational, Timeline: TimelineUpcoming, Badge: "International", Responsible: "National Schools U20 Select, URU, EXCOM"},
	{ID: 1, Title: "EXCOM Annual Planning Meeting", Date: "January 15, 2025", Location: "USRA Headquarters, Kampala", Description: "Annual executive committee meeting to plan the year's activities and set strategic direction.", Category: CategoryMeeting, Timeline: TimelinePast, Badge: "Completed", Responsible: "EXCOM"},
	{ID: 2, Title: "Ball Game One Qualifiers", Date: "Feb 23 - Apr 6, 2025", Location: "All Regions - Multiple Venues", Description: "Regional qualifying tournaments across Central, Eastern, Western, and Northern regions.", Category: CategoryTournament, Timeline: TimelinePast, Badge: "Completed", Responsible: "Regional Coordination Committees & RDOs", Leagues: []string{"Central Main League", "Regional Girls' Leagues", "+7 more leagues"}},
	{ID: 3, Title: "Regional Ball Game One Qualifiers Evaluation", Date: "April 6-13, 2025", Location: "Regional Centers", Description: "Post-qualifier evaluation meetings to assess performance and prepare for national games.", Category: CategoryMeeting, Timeline: TimelinePast, Badge: "Completed", Responsible: "Regional Representatives"},
	{ID: 4, Title: "Ball Game One Evaluation & Planning Meeting", Date: "April 19, 2025", Location: "USRA Headquarters, Kampala", Description: "Comprehensive evaluation of qualifiers and strategic planning for national ball game one.", Category: CategoryMeeting, Timeline: TimelinePast, Badge: "Completed", Responsible: "EXCOM"},
	{ID: 5, Title: "USSSA National Ball Game One", Date: "May 4-14, 2025", Location: "Kampala Rugby Club", Description: "The premier national schools rugby championship featuring qualified teams from across Uganda.", Category: CategoryNational, Timeline: TimelinePast, Badge: "Completed", Responsible: "Qualified Schools"},
	{ID: 6, Title: "Ball Game Two Qualifiers (7s Tournaments)", Date: "June 8-29, 2025", Location: "Regional Venues", Description: "Fast-paced 7s rugby qualifiers including Kabaka Coronation, Kyabazinga, and regional championships.", Category: CategoryTournament, Timeline: TimelinePast, Badge: "Completed", Responsible: "Regional Coordination Committees & RDOs", Leagues: []string{"Kabaka Coronation 7s", "Kyabazinga 7s", "+3 more tournaments"}},
	{ID: 7, Title: "Ball Game Two Qualifiers Evaluation and AGM Planning", Date: "July 5, 2025", Location: "USRA Headquarters, Kampala", Description: "Evaluation of 7s tournaments and strategic planning for Ball Game Two and AGM preparations.", Category: CategoryMeeting, Timeline: TimelinePast, Badge: "Completed", Responsible: "EXCOM"},
	{ID: 8, Title: "USSSA National Ball Game Two", Date: "July 9-18, 2025", Location: "Kampala Rugby Club", Description: "Second national schools rugby championship featuring qualified teams from 7s tournaments.", Category: CategoryNational, Timeline: TimelinePast, Badge: "Completed", Responsible: "Qualified Schools"},
	{ID: 9, Title: "FEASSA Games", Date: "August 19-27, 2025", Location: "Nairobi, Kenya", Description: "Federation of East African Secondary Schools Sports Association games featuring Uganda's best.", Category: CategoryInternational, Timeline: TimelinePast, Badge: "Completed", Responsible: "Qualified Schools"},
}

// FilterEvents selects events matching a category and timeline filter. The
// "upcoming" timeline also includes current events, matching how the events
// page presents what is next on the calendar.
// INVARIANT: Pure; Events order is preserved
func FilterEvents(category, timeline string) []Event {
	var out []Event
	for _, e := range Events {
		if category != "" && category != CategoryAll && e.Category != category {
			continue
		}
		switch timeline {
		case "", TimelineAll:
		case TimelineUpcoming:
			if e.Timeline != TimelineUpcoming && e.Timeline != TimelineCurrent {
				continue
			}
		default:
			if e.Timeline != timeline {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}
