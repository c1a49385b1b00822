package bot

import (
	"strings"

	"github.com/dvconsultores/rhino-bot/bot/forms"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
)

const callbackPrefix = "rb:"

// Listing tokens understood by renderList.
const (
	listPlans     = "plans"
	listLocations = "locations"
	listSchedules = "schedules"
	listMethods   = "methods"
	listCoaches   = "coaches"
)

// route is one menu action. Exactly one of form, list or menu is set; staff
// routes are refused for ordinary clients.
type route struct {
	form  string
	list  string
	menu  string
	staff bool
}

// routes maps callback tokens to actions. Adding a menu entry is one line
// here plus a button in the matching keyboard.
var routes = map[string]route{
	"register": {form: forms.RegisterUser},
	"payment":  {form: forms.LogPayment},
	"language": {form: forms.SetLanguage},

	"plans":     {list: listPlans},
	"locations": {list: listLocations},
	"schedules": {list: listSchedules},

	"admin": {menu: "admin", staff: true},

	"update_user":     {form: forms.UpdateUser, staff: true},
	"attendance":      {form: forms.LogAttendance, staff: true},
	"add_coach":       {form: forms.AddCoach, staff: true},
	"edit_coach":      {form: forms.EditCoach, staff: true},
	"delete_coach":    {form: forms.DeleteCoach, staff: true},
	"list_coaches":    {list: listCoaches, staff: true},
	"add_location":    {form: forms.AddLocation, staff: true},
	"edit_location":   {form: forms.EditLocation, staff: true},
	"delete_location": {form: forms.DeleteLocation, staff: true},
	"add_plan":        {form: forms.AddPlan, staff: true},
	"edit_plan":       {form: forms.EditPlan, staff: true},
	"delete_plan":     {form: forms.DeletePlan, staff: true},
	"add_method":      {form: forms.AddPaymentMethod, staff: true},
	"edit_method":     {form: forms.EditPaymentMethod, staff: true},
	"delete_method":   {form: forms.DeletePaymentMethod, staff: true},
	"methods":         {list: listMethods, staff: true},
	"add_schedule":    {form: forms.AddSchedule, staff: true},
	"edit_schedule":   {form: forms.EditSchedule, staff: true},
	"delete_schedule": {form: forms.DeleteSchedule, staff: true},
}

func menuCallbackFilter(cq *tgbotapi.CallbackQuery) bool {
	return strings.HasPrefix(cq.Data, callbackPrefix)
}

func parseToken(data string) string {
	return strings.TrimPrefix(data, callbackPrefix)
}

func buildCallback(token string) string {
	return callbackPrefix + token
}
