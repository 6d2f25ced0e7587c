package generation

var cities = []string{
	"Lincoln", "Springfield", "Riverside", "Franklin", "Clinton",
	"Madison", "Arlington", "Georgetown", "Salem", "Manchester",
	"Aurora", "Dover", "Lexington", "Cleveland", "Jackson",
	"Columbus", "Huntington", "Charleston", "Richmond", "Portland",
	"Oakland", "Phoenix", "Denver", "Seattle", "Austin",
	"Nashville", "Memphis", "Atlanta", "Miami", "Dallas",
	"Tulsa", "Birmingham", "Louisville", "Indianapolis", "Milwaukee",
	"Detroit", "Chicago", "Minneapolis", "Kansas City", "St. Louis",
	"New Orleans", "Tampa", "Orlando", "Charlotte", "Raleigh",
	"Pittsburgh", "Philadelphia", "Boston", "Buffalo", "Baltimore",
}

var mascots = []string{
	"Eagles", "Tigers", "Bears", "Wolves", "Panthers",
	"Lions", "Hawks", "Falcons", "Cougars", "Wildcats",
	"Bulldogs", "Mustangs", "Broncos", "Ravens", "Cardinals",
	"Warriors", "Titans", "Spartans", "Vikings", "Knights",
	"Thunder", "Storm", "Blaze", "Crusaders", "Raiders",
	"Rangers", "Rebels", "Trojans", "Hornets", "Jaguars",
}

var firstNames = []string{
	"James", "Michael", "Robert", "David", "William", "John", "Chris", "Marcus", "Anthony", "Daniel",
	"Matthew", "Joshua", "Andrew", "Joseph", "Ryan", "Brandon", "Tyler", "Kevin", "Brian", "Jason",
	"Derek", "Jordan", "Aaron", "Adam", "Zach", "Jake", "Nick", "Sam", "Ben", "Luke",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Wilson", "Moore",
	"Taylor", "Anderson", "Thomas", "Jackson", "White", "Harris", "Martin", "Thompson", "Robinson", "Clark",
	"Lewis", "Lee", "Walker", "Hall", "Allen", "Young", "King", "Wright", "Scott", "Green",
}
