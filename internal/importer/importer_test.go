package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarpediem/krooster/internal/domain"
)

func TestParseCSV_FullExample(t *testing.T) {
	csv := `first_name,last_name,restaurant,positions,employment_type,days_off
# comment line
Som,Chai,Hua Hin,"kitchen,service",full_time,
Narin,Kaew,Sathorn,"bar,notareal",part_time,"Mon,Thu"
,NoFirstName,Hua Hin,service,full_time,
`

	rows := ParseCSV(csv)
	require.Len(t, rows, 2)

	assert.Equal(t, "Som", rows[0].FirstName)
	assert.Equal(t, 1, rows[0].RestaurantID)
	assert.Equal(t, []string{"kitchen", "service"}, rows[0].Positions)
	assert.Equal(t, domain.EmploymentFullTime, rows[0].EmploymentType)
	assert.Nil(t, rows[0].DaysOff)

	assert.Equal(t, "Narin", rows[1].FirstName)
	assert.Equal(t, 2, rows[1].RestaurantID)
	assert.Equal(t, []string{"bar"}, rows[1].Positions)
	assert.Equal(t, domain.EmploymentPartTime, rows[1].EmploymentType)
	assert.Equal(t, []int{0, 3}, rows[1].DaysOff)
}

func TestParseCSV_OrderPreserved(t *testing.T) {
	csv := "first_name\nAlpha\nBravo\nCharlie\n"
	rows := ParseCSV(csv)
	require.Len(t, rows, 3)
	assert.Equal(t, "Alpha", rows[0].FirstName)
	assert.Equal(t, "Bravo", rows[1].FirstName)
	assert.Equal(t, "Charlie", rows[2].FirstName)
}

func TestParseCSV_DropsRowsWithoutFirstName(t *testing.T) {
	csv := "first_name,last_name\n,OnlyLast\n   ,Whitespace\nKeep,Me\n"
	rows := ParseCSV(csv)
	require.Len(t, rows, 1)
	assert.Equal(t, "Keep", rows[0].FirstName)
	assert.Equal(t, "Me", rows[0].LastName)
}

func TestParseCSV_RestaurantMapping(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"Sathorn", 2},
		{"sathorn annex", 2},
		{"2", 2},
		{"Hua Hin", 1},
		{"hua", 1},
		{"1", 1},
		{"somewhere else", 1},
		{"", 1},
	}
	for _, tt := range tests {
		csv := "first_name,restaurant\nTest," + `"` + tt.raw + `"` + "\n"
		rows := ParseCSV(csv)
		require.Len(t, rows, 1, "restaurant %q", tt.raw)
		assert.Equal(t, tt.want, rows[0].RestaurantID, "restaurant %q", tt.raw)
	}
}

func TestParseCSV_PositionsFiltering(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"valid subset kept", `"kitchen,service,bar"`, []string{"kitchen", "service", "bar"}},
		{"invalid dropped", `"bar,notareal"`, []string{"bar"}},
		{"all invalid defaults", `"cook,waiter"`, []string{"service"}},
		{"empty defaults", "", []string{"service"}},
		{"case insensitive", `"KITCHEN, Manager "`, []string{"kitchen", "manager"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := ParseCSV("first_name,positions\nTest," + tt.raw + "\n")
			require.Len(t, rows, 1)
			assert.Equal(t, tt.want, rows[0].Positions)
		})
	}
}

func TestParseCSV_EmploymentTypeDefaults(t *testing.T) {
	rows := ParseCSV("first_name,employment_type\nA,part_time\nB,EXTRA\nC,contractor\nD,\n")
	require.Len(t, rows, 4)
	assert.Equal(t, domain.EmploymentPartTime, rows[0].EmploymentType)
	assert.Equal(t, domain.EmploymentExtra, rows[1].EmploymentType)
	assert.Equal(t, domain.EmploymentFullTime, rows[2].EmploymentType)
	assert.Equal(t, domain.EmploymentFullTime, rows[3].EmploymentType)
}

func TestParseCSV_DaysOffPrefixMatching(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int
	}{
		{"short prefix", `"Mon,Thu"`, []int{0, 3}},
		{"full names", `"monday,sunday"`, []int{0, 6}},
		{"mixed case", `"MON,tue"`, []int{0, 1}},
		{"unmatched dropped", `"Mon,funday"`, []int{0}},
		{"all unmatched is nil", "someday", nil},
		{"empty is nil", "", nil},
		{"duplicates preserved", `"Mon,Mon"`, []int{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := ParseCSV("first_name,days_off\nTest," + tt.raw + "\n")
			require.Len(t, rows, 1)
			assert.Equal(t, tt.want, rows[0].DaysOff)
		})
	}
}

func TestParseCSV_FixedDayOffAlias(t *testing.T) {
	rows := ParseCSV("first_name,fixed_day_off\nTest,Wed\n")
	require.Len(t, rows, 1)
	assert.Equal(t, []int{2}, rows[0].DaysOff)
}

func TestParseCSV_PreferredShift(t *testing.T) {
	rows := ParseCSV("first_name,preferred_shift\nA,am\nB,Morning\nC,pm\nD,afternoon\nE,whenever\nF,\n")
	require.Len(t, rows, 6)
	assert.Equal(t, domain.PreferMorning, rows[0].PreferredShift)
	assert.Equal(t, domain.PreferMorning, rows[1].PreferredShift)
	assert.Equal(t, domain.PreferAfternoon, rows[2].PreferredShift)
	assert.Equal(t, domain.PreferAfternoon, rows[3].PreferredShift)
	assert.Equal(t, domain.PreferFlexible, rows[4].PreferredShift)
	assert.Equal(t, domain.PreferFlexible, rows[5].PreferredShift)
}

func TestParseCSV_PreferredShiftTypoAlias(t *testing.T) {
	rows := ParseCSV("first_name,prefered_shift\nTest,pm\n")
	require.Len(t, rows, 1)
	assert.Equal(t, domain.PreferAfternoon, rows[0].PreferredShift)
}

func TestParseCSV_MaxHours(t *testing.T) {
	rows := ParseCSV("first_name,max_hours_per_week\nA,42\nB,0\nC,-5\nD,lots\nE,\n")
	require.Len(t, rows, 5)
	require.NotNil(t, rows[0].MaxHoursPerWeek)
	assert.Equal(t, 42, *rows[0].MaxHoursPerWeek)
	assert.Nil(t, rows[1].MaxHoursPerWeek)
	assert.Nil(t, rows[2].MaxHoursPerWeek)
	assert.Nil(t, rows[3].MaxHoursPerWeek)
	assert.Nil(t, rows[4].MaxHoursPerWeek)
}

func TestParseCSV_IsMobile(t *testing.T) {
	rows := ParseCSV("first_name,is_mobile\nA,true\nB,TRUE\nC,1\nD,yes\nE,\n")
	require.Len(t, rows, 5)
	assert.True(t, rows[0].IsMobile)
	assert.True(t, rows[1].IsMobile)
	assert.True(t, rows[2].IsMobile)
	assert.False(t, rows[3].IsMobile)
	assert.False(t, rows[4].IsMobile)
}

func TestParseCSV_CommentsAndBlanksDoNotShiftAlignment(t *testing.T) {
	csv := `
# leading comment before the header
first_name,last_name

# section: kitchen staff
Som,Chai

Narin,Kaew
`
	rows := ParseCSV(csv)
	require.Len(t, rows, 2)
	assert.Equal(t, "Chai", rows[0].LastName)
	assert.Equal(t, "Kaew", rows[1].LastName)
}

func TestParseCSV_QuotedCommasStaySingleField(t *testing.T) {
	rows := ParseCSV("first_name,positions,employment_type\nSom,\"kitchen,service\",extra\n")
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"kitchen", "service"}, rows[0].Positions)
	assert.Equal(t, domain.EmploymentExtra, rows[0].EmploymentType)
}

func TestParseCSV_ShortRowsRightPadded(t *testing.T) {
	rows := ParseCSV("first_name,last_name,phone,email\nSom\n")
	require.Len(t, rows, 1)
	assert.Equal(t, "Som", rows[0].FirstName)
	assert.Equal(t, "", rows[0].LastName)
	assert.Equal(t, "", rows[0].Phone)
}

func TestParseCSV_UnknownColumnsIgnored(t *testing.T) {
	rows := ParseCSV("first_name,favourite_color\nSom,teal\n")
	require.Len(t, rows, 1)
	assert.Equal(t, "Som", rows[0].FirstName)
}

func TestParseCSV_EmptyInput(t *testing.T) {
	assert.Empty(t, ParseCSV(""))
	assert.Empty(t, ParseCSV("# only comments\n\n"))
	assert.Empty(t, ParseCSV("first_name,last_name\n"))
}

func TestTemplate_ParsesThroughOwnParser(t *testing.T) {
	rows := ParseCSV(string(Template()))
	require.Len(t, rows, 3)

	assert.Equal(t, "Somchai", rows[0].FirstName)
	assert.Equal(t, 1, rows[0].RestaurantID)
	assert.Equal(t, []string{"kitchen", "service"}, rows[0].Positions)
	assert.Equal(t, []int{0, 3}, rows[0].DaysOff)
	assert.Equal(t, domain.PreferMorning, rows[0].PreferredShift)
	require.NotNil(t, rows[0].MaxHoursPerWeek)
	assert.Equal(t, 48, *rows[0].MaxHoursPerWeek)

	assert.Equal(t, 2, rows[1].RestaurantID)
	assert.True(t, rows[1].IsMobile)
	assert.Equal(t, []int{6}, rows[1].DaysOff)

	assert.Equal(t, 2, rows[2].RestaurantID)
	assert.Equal(t, domain.EmploymentExtra, rows[2].EmploymentType)
	assert.Nil(t, rows[2].MaxHoursPerWeek)
}
