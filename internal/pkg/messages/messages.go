// Package messages resolves message keys to the localized texts returned in
// problem-detail bodies. Keys mirror the per-endpoint error namespaces of the
// REST APIs.
package messages

// BadRequest is the generic detail for request-binding failures.
const BadRequest = "Плохой запрос"

var bundle = map[string]string{
	// publication-api
	"publication-api.publications.errors.publication_is_not_found":        "Публикация не найдена",
	"publication-api.publications.update.errors.user_is_not_owner":        "Пользователь не является владельцем публикаций",
	"publication-api.publications.delete.errors.user_is_not_owner":        "Пользователь не является владельцем публикаций",
	"publication-api.publications.create.errors.title_is_null":            "Название публикаций должно быть указано",
	"publication-api.publications.create.errors.title_is_blank":           "Название публикаций не должно быть пустым",
	"publication-api.publications.create.errors.title_size_is_invalid":    "Название публикаций должно содержать от 3 до 200 символов",
	"publication-api.publications.create.errors.description_size_is_invalid": "Описание публикаций не должно превышать 2000 символов",

	// feedback-api: comments
	"feedback-api.comments.errors.comment_is_not_found":          "Комментарий не найден",
	"feedback-api.comments.read.errors.publication_is_not_found": "Публикация не найдена",
	"feedback-api.comments.create.errors.publication_is_not_found": "Публикация не найдена",
	"feedback-api.comments.update.errors.user_is_not_owner":      "Пользователь не является владельцем комментария",
	"feedback-api.comments.delete.errors.user_is_not_owner":      "Пользователь не является владельцем комментария",
	"feedback-api.comments.create.errors.text_is_null":           "Текст комментария должен быть указан",
	"feedback-api.comments.create.errors.text_is_blank":          "Текст комментария не должен быть пустым",
	"feedback-api.comments.create.errors.text_has_invalid_size":  "Текст комментария должен содержать от 1 до 2000 символов",
	"feedback-api.comments.create.errors.publication_id_is_null": "Публикация должна быть указана",

	// feedback-api: likes
	"feedback-api.likes.errors.like_is_not_found":                       "Данный пользователь еще не ставил лайк данной публикаций",
	"feedback-api.likes.read.errors.publication_is_not_found":           "Публикация не найдена",
	"feedback-api.likes.create.errors.publication_is_not_found":         "Публикация не найдена",
	"feedback-api.likes.create.errors.user_has_already_like_publication": "Пользователь уже ставил лайк данной публикаций",
	"feedback-api.likes.create.errors.publication_id_is_null":           "Публикация должна быть указана",
	"feedback-api.likes.delete.errors.user_is_not_owner":                "Данный пользователь не является владельцем лайка",

	// messenger-api: chats
	"messenger-api.chats.errors.not_found":                      "Такого чата не существует",
	"messenger-api.chats.errors.user_is_not_chat_participant":   "Пользователь не является участником чата",
	"messenger-api.chats.create.errors.chat_already_exists":     "Чат с данным пользователем уже существует",
	"messenger-api.chats.create.errors.user_id_is_null":         "Пользователь должен быть указан",

	// messenger-api: groups
	"messenger-api.groups.errors.not_found":                            "Такой группы не существует",
	"messenger-api.groups.errors.user_is_not_participant":              "Пользователь не является участником группы",
	"messenger-api.groups.create.errors.title_is_null":                 "Название группы должно быть указано",
	"messenger-api.groups.create.errors.title_is_blank":                "Название группы не должно быть пустым",
	"messenger-api.groups.create.errors.title_has_invalid_size":        "Название группы должно содержать от 1 до 100 символов",
	"messenger-api.groups.create.errors.description_has_invalid_size":  "Описание группы не должно превышать 2000 символов",
	"messenger-api.groups.update.errors.user_is_not_owner":             "Пользователь не является владельцем группы",
	"messenger-api.groups.delete.errors.user_is_not_owner":             "Пользователь не является владельцем группы",
	"messenger-api.groups.add-user.errors.user_is_not_owner":           "Пользователь не является владельцем группы",
	"messenger-api.groups.add-user.errors.user_is_already_in_group":    "Пользователь уже состоит в группе",
	"messenger-api.groups.add-user.errors.user_is_null":                "Пользователь должен быть указан",
	"messenger-api.groups.kick-user.errors.user_is_not_owner":          "Пользователь не является владельцем группы",
	"messenger-api.groups.kick-user.errors.user_is_not_participant":    "Пользователь не является участником группы",
	"messenger-api.groups.kick-user.errors.user_is_null":               "Пользователь должен быть указан",
	"messenger-api.groups.leave-group.errors.user_is_not_participant":  "Пользователь не является участником группы",

	// message-api: chat messages
	"message-api.chat-messages.errors.not_found":                          "Сообщение не найдено",
	"message-api.chat-messages.read.errors.chat_is_not_found":             "Такого чата не существует",
	"message-api.chat-messages.create.errors.chat_is_not_found":           "Такого чата не существует",
	"message-api.chat-messages.read.errors.user_is_not_chat_participant":  "Пользователь не является участником чата",
	"message-api.chat-messages.update.errors.user_is_not_owner":           "Пользователь не является автором сообщения",
	"message-api.chat-messages.delete.errors.user_is_not_owner":           "Пользователь не является автором сообщения",
	"message-api.chat-messages.create.errors.text_is_null":                "Текст сообщения должен быть указан",
	"message-api.chat-messages.create.errors.text_is_blank":               "Текст сообщения не должен быть пустым",
	"message-api.chat-messages.create.errors.text_has_invalid_size":       "Текст сообщения должен содержать от 1 до 2000 символов",
	"message-api.chat-messages.create.errors.chat_id_is_null":             "Чат должен быть указан",
	"message-api.chat-messages.update.errors.text_is_null":                "Текст сообщения должен быть указан",
	"message-api.chat-messages.update.errors.text_is_blank":               "Текст сообщения не должен быть пустым",
	"message-api.chat-messages.update.errors.text_has_invalid_size":       "Текст сообщения должен содержать от 1 до 2000 символов",

	// message-api: group messages
	"message-api.group-messages.errors.not_found":                          "Сообщение не найдено",
	"message-api.group-messages.read.errors.group_is_not_found":            "Такой группы не существует",
	"message-api.group-messages.create.errors.group_is_not_found":          "Такой группы не существует",
	"message-api.group-messages.read.errors.user_is_not_group_participant": "Пользователь не является участником группы",
	"message-api.group-messages.create.errors.user_is_not_group_participant": "Пользователь не является участником группы",
	"message-api.group-messages.update.errors.user_is_not_owner":           "Пользователь не является автором сообщения",
	"message-api.group-messages.delete.errors.user_is_not_owner":           "Пользователь не является автором сообщения",
	"message-api.group-messages.create.errors.text_is_null":                "Текст сообщения должен быть указан",
	"message-api.group-messages.create.errors.text_is_blank":               "Текст сообщения не должен быть пустым",
	"message-api.group-messages.create.errors.text_has_invalid_size":       "Текст сообщения должен содержать от 1 до 2000 символов",
	"message-api.group-messages.create.errors.group_id_is_null":            "Группа должна быть указана",
	"message-api.group-messages.update.errors.text_is_null":                "Текст сообщения должен быть указан",
	"message-api.group-messages.update.errors.text_is_blank":               "Текст сообщения не должен быть пустым",
	"message-api.group-messages.update.errors.text_has_invalid_size":       "Текст сообщения должен содержать от 1 до 2000 символов",
}

// Get resolves a message key to its localized text. Unknown keys resolve to
// the key itself, so a missing entry stays diagnosable instead of silent.
func Get(key string) string {
	if text, ok := bundle[key]; ok {
		return text
	}
	return key
}
