package importer

// TemplateFilename download name of the employee import template.
const TemplateFilename = "employee-import-template.csv"

// csvTemplate fixed example document handed out for download. Comment
// lines double as inline documentation; the parser skips them.
const csvTemplate = `# Krooster employee import template
# Lines starting with '#' are ignored, so keep these notes around.
#
# restaurant:        "Hua Hin" / "1" or "Sathorn" / "2"
# positions:         kitchen, service, bar, steward, cashier, runner, security, manager
#                    (quote multi-value cells: "kitchen,service")
# employment_type:   full_time, part_time or extra
# days_off:          weekday names or 3-letter prefixes, e.g. "Mon,Thu"
# preferred_shift:   am / morning, pm / afternoon, or flexible
# max_hours_per_week positive number, leave empty for no cap
first_name,last_name,phone,email,restaurant,is_mobile,positions,employment_type,days_off,preferred_shift,max_hours_per_week
Somchai,Prasert,0812345678,somchai@example.com,Hua Hin,false,"kitchen,service",full_time,"Mon,Thu",am,48
Narin,Kaewmala,0898765432,narin@example.com,Sathorn,true,bar,part_time,Sun,pm,30
Malee,Srisuk,,,2,false,service,extra,,flexible,
`

// Template returns the import template document as bytes.
func Template() []byte {
	return []byte(csvTemplate)
}
