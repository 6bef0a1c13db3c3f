package content

// Member is one person on a committee roster.
type Member struct {
	Name   string
	Title  string
	School string
	Region string
	Email  string
	Phone  string
}

// Zone groups the members of one regional zone committee.
type Zone struct {
	Name    string
	Members []Member
}

// Committee is a national committee, or the container of regional zones.
type Committee struct {
	Name    string
	Members []Member
	Zones   []Zone
}

// Leadership is the association's committee structure as published on the
// leadership page.
var Leadership = []Committee{
	{
		Name: "Executive Committee",
		Members: []Member{
			{Name: "Okello Dickson", Title: "Chairman", School: "Makerere College School", Region: "Central Region", Email: "okellodsn@gmail.com", Phone: "+256 783 562 222"},
			{Name: "Molo Robson", Title: "Vice Chairman", School: "Inomo S.S", Region: "Northern Region", Email: "robsonmolo@gmail.com", Phone: "+256 773 346 360"},
			{Name: "Seguya Wilfred Bakaluba", Title: "General Secretary", School: "Hana International", Region: "Central Region", Email: "wilfredsseguya@gmail.com", Phone: "+256 788 378 660"},
			{Name: "Sewaya Ismail", Title: "Treasurer", School: "Kira College Butiki", Region: "Eastern Region", Email: "sewayamiti77@gmail.com", Phone: "+256 774 416 871"},
			{Name: "Faridah Kayegi", Title: "Woman Representative", School: "Oxford High School Mbale", Region: "Eastern Region", Email: "kayeridah1@gmail.com", Phone: "+256 786 082 927"},
			{Name: "Wati Richard", Title: "Central Schools Representative", School: "London College of St. Lawrence-Maya", Region: "Central Region", Email: "watirichard3@gmail.com", Phone: "+256 766 026 974"},
			{Name: "Kigenyi Patrick Paul", Title: "Western Schools Representative", School: "Mbarara High School", Region: "Western Region", Email: "mukyapat@gmail.com", Phone: "+256 775 728 516"},
			{Name: "Ochakachon Robert", Title: "Northern Schools Representative", School: "Sir Samuel Baker School-Gulu", Region: "Northern Region", Email: "ochakachonrobert@gmail.com", Phone: "+256 779 758 887"},
			{Name: "Barasa Moses", Title: "Eastern Schools Representative", School: "Busoga College Mwiri", Region: "Eastern Region", Email: "barasamoses295@gmail.com", Phone: "+256 772 614 568"},
		},
	},
	{
		Name: "Finance Committee",
		Members: []Member{
			{Name: "Sewaya Ismail", Title: "Chairperson", School: "Kira College Butiki", Region: "Eastern Region", Email: "sewayamiti77@gmail.com", Phone: "+256 774 416 871"},
			{Name: "Seguya Wilfred Bakaluba", Title: "Secretary", School: "Hana International", Region: "Central Region", Email: "wilfredsseguya@gmail.com", Phone: "+256 788 378 660"},
			{Name: "Okello Dickson", Title: "Member", School: "Makerere College School", Region: "Central Region", Email: "okellodsn@gmail.com", Phone: "+256 783 562 222"},
			{Name: "Kigenyi Patrick Paul", Title: "Member", School: "Mbarara High School", Region: "Western Region", Email: "mukyapat@gmail.com", Phone: "+256 775 728 516"},
			{Name: "Ochakachon Robert", Title: "Member", School: "Sir Samuel Baker School Gulu", Region: "Northern Region", Email: "ochakachonrobert@gmail.com", Phone: "+256 779 758 887"},
		},
	},
	{
		Name: "Technical Committee",
		Members: []Member{
			{Name: "Matsiko Vian", Title: "Chairperson", School: "TBA", Region: "TBA"},
			{Name: "Molo Robson", Title: "Secretary", School: "Inomo S.S", Region: "Northern Region", Email: "robsonmolo@gmail.com", Phone: "+256 773 346 360"},
			{Name: "Barasa Moses", Title: "Member", School: "Busoga College Mwiri", Region: "Eastern Region", Email: "barasamoses295@gmail.com", Phone: "+256 772 614 568"},
			{Name: "Wati Richard", Title: "Member", School: "London College of St. Lawrence Maya", Region: "Central Region", Email: "watirichard3@gmail.com", Phone: "+256 766 026 974"},
			{Name: "Seguya Wilfred Bakaluba", Title: "Member", School: "Hana International", Region: "Central Region", Email: "wilfredsseguya@gmail.com", Phone: "+256 788 378 660"},
		},
	},
	{
		Name: "Disciplinary Committee",
		Members: []Member{
			{Name: "Faridah Kayegi", Title: "Secretary", School: "Oxford High School Mbale", Region: "Eastern Region", Email: "kayeridah1@gmail.com", Phone: "+256 786 082 927"},
			{Name: "To Be Appointed", Title: "Additional Members", School: "Various Schools", Region: "All Regions"},
		},
	},
	{
		Name: "Regional Committees",
		Zones: []Zone{
			{
				Name: "Central Region Committee",
				Members: []Member{
					{Name: "Wati Richard", Title: "Chairperson", School: "London College of St. Lawrence Maya", Region: "Central Region", Email: "watirichard3@gmail.com", Phone: "+256 766 026 974"},
					{Name: "Adong Zelindae Harriet", Title: "Entebbe Zone", School: "Boston High School Mpala", Region: "Central Region", Email: "zelindaharriets@gmail.com", Phone: "+256 770 726 467"},
					{Name: "Erisa Mwesigwa", Title: "Muko Zone", School: "Mpunge Seed School", Region: "Central Region", Email: "Erisamwesigwa.em@gmail.com", Phone: "+256 701 722 736"},
				},
			},
			{
				Name: "Western Region Committee",
				Members: []Member{
					{Name: "Kigenyi Patrick Paul", Title: "Ankole Zone", School: "Mbarara High School", Region: "Western Region", Email: "mukyapat@gmail.com", Phone: "+256 775 728 516"},
					{Name: "Hannington Rugumayo", Title: "Rwenzori Zone", School: "Nyakasura School", Region: "Western Region", Email: "hanningtonjames31@gmail.com", Phone: "+256 785 291 931"},
					{Name: "Kafeero Yusufu", Title: "Masaka Zone", School: "Kijjabwemi S.S", Region: "Western Region", Email: "yusufukafeero3@gmail.com", Phone: "+256 755 369 747"},
					{Name: "Atuheirirwe Charlotte", Title: "Kigezi Zone", School: "Kigezi High School", Region: "Western Region", Email: "acharlotte2013@gmail.com", Phone: "+256 785 957 535"},
				},
			},
			{
				Name: "Northern Region Committee",
				Members: []Member{
					{Name: "Ochakachon Robert", Title: "West Acholi", School: "Sir Samuel Baker School", Region: "Northern Region", Email: "ochakachonrobert@gmail.com", Phone: "+256 779 758 887"},
					{Name: "Olanya Thomas", Title: "East Acholi", School: "Kitgum Comprehensive College", Region: "Northern Region", Email: "olanyathomas5@gmail.com", Phone: "+256 762 180 188"},
					{Name: "Okot Jaspher", Title: "Lango Zone", School: "Dr. Obote College Boroboro", Region: "Northern Region", Email: "okotjaspher123@gmail.com", Phone: "+256 782 876 832"},
					{Name: "Bayo Hamid", Title: "West Nile Zone", School: "St. Augustine S.S", Region: "Northern Region", Email: "bayohamid80@gmail.com", Phone: "+256 778 938 578"},
				},
			},
			{
				Name: "Eastern Region Committee",
				Members: []Member{
					{Name: "Barasa Moses", Title: "Busoga Zone", School: "Busoga College Mwiri", Region: "Eastern Region", Email: "barasamoses295@gmail.com", Phone: "+256 772 614 568"},
					{Name: "Ochola Samuel", Title: "Bukedi Zone", School: "Great Aubrey Memorial", Region: "Eastern Region", Phone: "+256 706 066 806"},
					{Name: "Ethel Musabi", Title: "Malwa Bugisu Zone", School: "Nabumali High School", Region: "Eastern Region", Email: "emnamusabi@gmail.com", Phone: "+256 702 904 183"},
					{Name: "Mutyaba Vincent", Title: "Teso Zone", School: "St. Michael S.S-Amen", Region: "Eastern Region", Phone: "+256 700 487 831"},
				},
			},
		},
	},
	{
		Name: "Girls' Rugby Committee",
		Members: []Member{
			{Name: "Ms. Kayegi Faridah", Title: "Chairperson", School: "Oxford High School Mbale", Region: "Eastern Region", Email: "kayeridah1@gmail.com", Phone: "+256 786 082 927"},
			{Name: "Mr. Molo Robson", Title: "Secretary", School: "Inomo S.S", Region: "Northern Region", Email: "robsonmolo@gmail.com", Phone: "+256 773 346 360"},
			{Name: "Mr. Kafeero Yusuf", Title: "Western Region Member", School: "Kijjabwemi S.S", Region: "Western Region", Email: "yusufukafeero3@gmail.com", Phone: "+256 755 369 747"},
			{Name: "Ms. Zerinda Adong Harriet", Title: "Central Region Member", School: "Boston High School Mpala", Region: "Central Region", Email: "zelindaharriets@gmail.com", Phone: "+256 770 726 467"},
			{Name: "Ms. Ethel Malwa", Title: "Eastern Region Member", School: "Nabumali High School", Region: "Eastern Region", Email: "emnamusabi@gmail.com", Phone: "+256 702 904 183"},
		},
	},
}
