// Package docs registra la definición OpenAPI servida en /swagger/doc.json.
// Se mantiene a mano: solo describe rutas, sin definitions. No correr `swag init`
// sobre este paquete sin revisar el resultado.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/tasks": {
            "get": {"tags": ["tasks"], "summary": "Listar tareas agrupadas (today, tomorrow, upcoming)", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Parámetros inválidos"}}},
            "post": {"tags": ["tasks"], "summary": "Crear tarea", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Campos obligatorios"}}}
        },
        "/tasks/options": {
            "get": {"tags": ["tasks"], "summary": "Mascotas y etiquetas sugeridas para el formulario", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/tasks/{taskID}": {
            "get": {"tags": ["tasks"], "summary": "Obtener tarea", "parameters": [{"type": "string", "name": "taskID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "task not found"}}},
            "put": {"tags": ["tasks"], "summary": "Editar tarea", "parameters": [{"type": "string", "name": "taskID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Campos obligatorios"}, "404": {"description": "task not found"}}}
        },
        "/tasks/{taskID}/toggle": {
            "post": {"tags": ["tasks"], "summary": "Alternar completada", "parameters": [{"type": "string", "name": "taskID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "task not found"}}}
        },
        "/tasks/{taskID}/delete": {
            "post": {"tags": ["tasks"], "summary": "Solicitar eliminación de tarea", "parameters": [{"type": "string", "name": "taskID", "in": "path", "required": true}], "responses": {"202": {"description": "Accepted"}, "404": {"description": "task not found"}}}
        },
        "/history": {
            "get": {"tags": ["tasks"], "summary": "Historial de tareas con estado derivado", "responses": {"200": {"description": "OK"}}}
        },
        "/calendar": {
            "get": {"tags": ["calendar"], "summary": "Grilla mensual", "parameters": [{"type": "string", "name": "month", "in": "query"}, {"type": "string", "name": "selected", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        },
        "/calendar/days/{date}/tasks": {
            "get": {"tags": ["calendar"], "summary": "Tareas de un día", "parameters": [{"type": "string", "name": "date", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/reports": {
            "get": {"tags": ["reports"], "summary": "Listar alertas", "parameters": [{"type": "string", "name": "scope", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["reports"], "summary": "Crear alerta de mascota perdida", "responses": {"201": {"description": "Created"}, "400": {"description": "Campos obligatorios"}}}
        },
        "/reports/images": {
            "post": {"tags": ["reports"], "summary": "Subir imagen (stub)", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/{reportID}": {
            "get": {"tags": ["reports"], "summary": "Obtener alerta", "parameters": [{"type": "string", "name": "reportID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "report not found"}}}
        },
        "/reports/{reportID}/mark-found": {
            "post": {"tags": ["reports"], "summary": "Solicitar marcar alerta como encontrada", "parameters": [{"type": "string", "name": "reportID", "in": "path", "required": true}], "responses": {"202": {"description": "Accepted"}, "403": {"description": "forbidden"}, "404": {"description": "report not found"}, "409": {"description": "invalid state"}}}
        },
        "/confirmations/{kind}": {
            "get": {"tags": ["confirmations"], "summary": "Estado de la confirmación", "parameters": [{"type": "string", "name": "kind", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "unknown action"}}}
        },
        "/confirmations/{kind}/confirm": {
            "post": {"tags": ["confirmations"], "summary": "Aplicar la acción pendiente", "parameters": [{"type": "string", "name": "kind", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "nothing staged"}}}
        },
        "/confirmations/{kind}/cancel": {
            "post": {"tags": ["confirmations"], "summary": "Descartar la acción pendiente", "parameters": [{"type": "string", "name": "kind", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/pets": {
            "get": {"tags": ["pets"], "summary": "Listar mascotas", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["pets"], "summary": "Crear mascota", "responses": {"201": {"description": "Created"}, "400": {"description": "Campos inválidos"}}}
        },
        "/pets/{petID}": {
            "get": {"tags": ["pets"], "summary": "Obtener mascota", "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "pet not found"}}},
            "put": {"tags": ["pets"], "summary": "Editar mascota", "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "pet not found"}}}
        },
        "/profile": {
            "get": {"tags": ["profile"], "summary": "Perfil visible", "responses": {"200": {"description": "OK"}}}
        },
        "/profile/draft": {
            "get": {"tags": ["profile"], "summary": "Borrador del formulario de perfil", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["profile"], "summary": "Editar borrador de perfil", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["profile"], "summary": "Descartar borrador de perfil", "responses": {"204": {"description": "No Content"}}}
        },
        "/profile/draft/submit": {
            "post": {"tags": ["profile"], "summary": "Guardar perfil", "responses": {"200": {"description": "OK"}}}
        },
        "/account/validate/{form}": {
            "post": {"tags": ["account"], "summary": "Validar formulario de cuenta", "parameters": [{"type": "string", "name": "form", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "unknown form"}}}
        }
    }
}`

// SwaggerInfo contiene la metadata exportada de la API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Care Companion API",
	Description:      "Tareas, calendario, historial, alertas de mascotas perdidas y perfil.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
