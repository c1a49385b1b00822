// Package i18n holds the bot's message catalogs. The language is an explicit
// argument on every lookup; there is no ambient default-language state.
package i18n

import "fmt"

const (
	Spanish = "es"
	English = "en"
)

// T resolves key for lang, falling back to Spanish and then to the key itself,
// so an untranslated key is still visible instead of producing a blank message.
func T(lang, key string) string {
	if m, ok := catalogs[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := catalogs[Spanish][key]; ok {
		return s
	}
	return key
}

// Tf resolves key for lang and formats it with args.
func Tf(lang, key string, args ...any) string {
	if len(args) == 0 {
		return T(lang, key)
	}
	return fmt.Sprintf(T(lang, key), args...)
}

var catalogs = map[string]map[string]string{
	Spanish: {
		"cancel": "Cancelar",
		"skip":   "Omitir",
		"yes":    "Sí",
		"no":     "No",

		"menu_welcome": "Bienvenido al Rhino Bot %s, podrás registrar tus pagos, ver sedes, precios y mucho más",
		"menu_title":   "Opciones disponibles:",
		"admin_title":  "Administración:",

		"btn_register":  "📝 Registrarse",
		"btn_plans":     "💪 Planes",
		"btn_locations": "📍 Sedes",
		"btn_schedules": "🕒 Horarios",
		"btn_payment":   "💵 Registrar pago",
		"btn_admin":     "⚙️ Administrador",
		"btn_language":  "🌐 Idioma",

		"btn_add_coach":       "Agregar entrenador",
		"btn_edit_coach":      "Editar entrenador",
		"btn_delete_coach":    "Eliminar entrenador",
		"btn_list_coaches":    "Ver entrenadores",
		"btn_add_location":    "Agregar sede",
		"btn_edit_location":   "Editar sede",
		"btn_delete_location": "Eliminar sede",
		"btn_add_plan":        "Agregar plan",
		"btn_edit_plan":       "Editar plan",
		"btn_delete_plan":     "Eliminar plan",
		"btn_add_method":      "Agregar método de pago",
		"btn_edit_method":     "Editar método de pago",
		"btn_delete_method":   "Eliminar método de pago",
		"btn_list_methods":    "Ver métodos de pago",
		"btn_add_schedule":    "Agregar horario",
		"btn_edit_schedule":   "Editar horario",
		"btn_delete_schedule": "Eliminar horario",
		"btn_attendance":      "Registrar asistencia",
		"btn_update_user":     "Actualizar mis datos",

		"prompt_user_name":      "Por favor, ingrese su nombre:",
		"prompt_user_lastname":  "Por favor, ingrese su apellido:",
		"prompt_user_cedula":    "Por favor, ingrese su cédula:",
		"prompt_user_email":     "Por favor, ingrese su correo electrónico:",
		"prompt_user_birth":     "Por favor, ingrese su fecha de nacimiento (DD/MM/AAAA):",
		"prompt_user_phone":     "Por favor, ingrese su número de teléfono:",
		"prompt_user_instagram": "Por favor, ingrese su handle de Instagram (u 'Omitir'):",

		"prompt_payment_method":    "Seleccione el método de pago:",
		"prompt_payment_amount":    "Ingrese el monto del pago:",
		"prompt_payment_reference": "Ingrese la referencia del pago (u 'Omitir'):",
		"prompt_payment_proof":     "Envíe el comprobante de pago (imagen o PDF, u 'Omitir'):",

		"prompt_attendance_coach":    "Seleccione un entrenador:",
		"prompt_attendance_client":   "Ingrese el ID del usuario (cliente):",
		"prompt_attendance_location": "Seleccione una sede:",

		"prompt_coach_cedula":   "Ingrese la cédula del entrenador:",
		"prompt_coach_names":    "Ingrese el nombre del entrenador:",
		"prompt_coach_location": "Seleccione la sede del entrenador:",
		"prompt_coach_select":   "Seleccione un entrenador:",

		"prompt_location_select":  "Seleccione una sede:",
		"prompt_location_name":    "Ingrese el nombre de la sede:",
		"prompt_location_address": "Ingrese la dirección de la sede:",

		"prompt_plan_select": "Seleccione un plan:",
		"prompt_plan_name":   "Ingrese el nombre del plan:",
		"prompt_plan_price":  "Ingrese el precio del plan:",

		"prompt_method_select": "Seleccione un método de pago:",
		"prompt_method_name":   "Ingrese el nombre del método de pago:",

		"prompt_schedule_location":  "Seleccione la sede del horario:",
		"prompt_schedule_day":       "Seleccione el día:",
		"prompt_schedule_time_init": "Ingrese la hora de inicio (HH:MM):",
		"prompt_schedule_time_end":  "Ingrese la hora de fin (HH:MM):",
		"prompt_schedule_select":    "Seleccione un horario:",

		"prompt_confirm_delete": "¿Confirma la eliminación?",
		"prompt_language":       "Seleccione su idioma:",

		"reject_required":         "Este campo es obligatorio.",
		"reject_invalid_number":   "Entrada inválida. Por favor, ingrese solo números.",
		"reject_out_of_range":     "Número fuera de rango.",
		"reject_invalid_amount":   "Monto inválido. Ingrese un número válido.",
		"reject_invalid_date":     "Formato de fecha incorrecto. Use el formato DD/MM/AAAA.",
		"reject_invalid_email":    "Correo electrónico inválido.",
		"reject_invalid_time":     "Hora inválida. Use el formato HH:MM.",
		"reject_invalid_option":   "Selección inválida. Por favor, elija una opción válida.",
		"reject_invalid_file":     "Envíe una imagen o un PDF.",
		"reject_skip_not_allowed": "Este campo no se puede omitir.",

		"form_cancelled":     "Proceso cancelado.",
		"form_submitted":     "✅ %s",
		"form_submit_failed": "❌ No se pudo guardar. Por favor, intente el proceso de nuevo.",
		"form_in_progress":   "Ya hay un proceso en curso. Envíe 'Cancelar' para abandonarlo.",

		"plans_header":     "Planes disponibles:",
		"locations_header": "Sedes disponibles:",
		"schedules_header": "Horarios disponibles:",
		"methods_header":   "Métodos de pago:",
		"coaches_header":   "Entrenadores:",
		"none_available":   "No hay registros disponibles.",
		"fetch_error":      "Error al obtener los datos.",
	},
	English: {
		"cancel": "Cancel",
		"skip":   "Skip",
		"yes":    "Yes",
		"no":     "No",

		"menu_welcome": "Welcome to Rhino Bot %s, you can register your payments, see locations, prices and much more",
		"menu_title":   "Available options:",
		"admin_title":  "Administration:",

		"btn_register":  "📝 Register",
		"btn_plans":     "💪 Plans",
		"btn_locations": "📍 Locations",
		"btn_schedules": "🕒 Schedules",
		"btn_payment":   "💵 Log payment",
		"btn_admin":     "⚙️ Administrator",
		"btn_language":  "🌐 Language",

		"btn_add_coach":       "Add coach",
		"btn_edit_coach":      "Edit coach",
		"btn_delete_coach":    "Delete coach",
		"btn_list_coaches":    "List coaches",
		"btn_add_location":    "Add location",
		"btn_edit_location":   "Edit location",
		"btn_delete_location": "Delete location",
		"btn_add_plan":        "Add plan",
		"btn_edit_plan":       "Edit plan",
		"btn_delete_plan":     "Delete plan",
		"btn_add_method":      "Add payment method",
		"btn_edit_method":     "Edit payment method",
		"btn_delete_method":   "Delete payment method",
		"btn_list_methods":    "List payment methods",
		"btn_add_schedule":    "Add schedule",
		"btn_edit_schedule":   "Edit schedule",
		"btn_delete_schedule": "Delete schedule",
		"btn_attendance":      "Log attendance",
		"btn_update_user":     "Update my data",

		"prompt_user_name":      "Please enter your first name:",
		"prompt_user_lastname":  "Please enter your last name:",
		"prompt_user_cedula":    "Please enter your ID number:",
		"prompt_user_email":     "Please enter your email address:",
		"prompt_user_birth":     "Please enter your date of birth (DD/MM/YYYY):",
		"prompt_user_phone":     "Please enter your phone number:",
		"prompt_user_instagram": "Please enter your Instagram handle (or 'Skip'):",

		"prompt_payment_method":    "Select the payment method:",
		"prompt_payment_amount":    "Enter the payment amount:",
		"prompt_payment_reference": "Enter the payment reference (or 'Skip'):",
		"prompt_payment_proof":     "Send the payment proof (image or PDF, or 'Skip'):",

		"prompt_attendance_coach":    "Select a coach:",
		"prompt_attendance_client":   "Enter the client's user ID:",
		"prompt_attendance_location": "Select a location:",

		"prompt_coach_cedula":   "Enter the coach's ID number:",
		"prompt_coach_names":    "Enter the coach's name:",
		"prompt_coach_location": "Select the coach's location:",
		"prompt_coach_select":   "Select a coach:",

		"prompt_location_select":  "Select a location:",
		"prompt_location_name":    "Enter the location name:",
		"prompt_location_address": "Enter the location address:",

		"prompt_plan_select": "Select a plan:",
		"prompt_plan_name":   "Enter the plan name:",
		"prompt_plan_price":  "Enter the plan price:",

		"prompt_method_select": "Select a payment method:",
		"prompt_method_name":   "Enter the payment method name:",

		"prompt_schedule_location":  "Select the schedule's location:",
		"prompt_schedule_day":       "Select the day:",
		"prompt_schedule_time_init": "Enter the start time (HH:MM):",
		"prompt_schedule_time_end":  "Enter the end time (HH:MM):",
		"prompt_schedule_select":    "Select a schedule:",

		"prompt_confirm_delete": "Confirm deletion?",
		"prompt_language":       "Select your language:",

		"reject_required":         "This field is required.",
		"reject_invalid_number":   "Invalid input. Please enter digits only.",
		"reject_out_of_range":     "Number out of range.",
		"reject_invalid_amount":   "Invalid amount. Enter a valid number.",
		"reject_invalid_date":     "Wrong date format. Use DD/MM/YYYY.",
		"reject_invalid_email":    "Invalid email address.",
		"reject_invalid_time":     "Invalid time. Use HH:MM.",
		"reject_invalid_option":   "Invalid selection. Please choose a valid option.",
		"reject_invalid_file":     "Send an image or a PDF.",
		"reject_skip_not_allowed": "This field cannot be skipped.",

		"form_cancelled":     "Process cancelled.",
		"form_submitted":     "✅ %s",
		"form_submit_failed": "❌ Could not save. Please try the process again.",
		"form_in_progress":   "A process is already in progress. Send 'Cancel' to abandon it.",

		"plans_header":     "Available plans:",
		"locations_header": "Available locations:",
		"schedules_header": "Available schedules:",
		"methods_header":   "Payment methods:",
		"coaches_header":   "Coaches:",
		"none_available":   "No records available.",
		"fetch_error":      "Failed to fetch data.",
	},
}
