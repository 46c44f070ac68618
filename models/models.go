package models

// All 迁移时使用的全部模型
func All() []any {
	return []any{
		&User{},
		&UserFollow{},
		&Post{},
		&PostLike{},
		&PostComment{},
		&Story{},
		&StoryView{},
		&Conversation{},
		&Message{},
	}
}
