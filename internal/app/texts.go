package app

const companyName = "ТралалелоТралала"

const (
	startFmt = "Привет, %s! Я бот компании <b>" + companyName + "</b>\n" +
		"Помогу с информацией о компании, контактах, событиях и пришлю дайджест.\n" +
		"Посмотри <code>/help</code> для списка команд."

	helpText = "Доступные команды:\n" +
		"/start — приветствие и подписка на дайджесты\n" +
		"/help — список команд\n" +
		"/company — информация о компании\n" +
		"/team — состав команды\n" +
		"/contacts — контакты сотрудников\n" +
		"/events — предстоящие события\n" +
		"/digest — сегодняшний дайджест\n" +
		"/departments — отделы из файла сотрудников\n" +
		"/staff — список сотрудников (опц. отдел)\n" +
		"/find — поиск сотрудников по имени/должности/отделу"

	findUsageText = "Использование: /find <строка поиска>"

	errorText = "Произошла ошибка. Попробуйте ещё раз позже."
)
