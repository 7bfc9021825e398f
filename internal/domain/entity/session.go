package entity

// Session identidad opaca del usuario autenticado, tal como la devuelve
// el backend en login/register. Su presencia habilita el resto de
// operaciones; la posee en exclusiva el session store.
type Session struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
