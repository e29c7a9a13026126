//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package types

// ChatType is the wire "type" of a chat.
// ENUM(private,group,supergroup,channel)
type ChatType string

// BareChatKind tells which id space a bare chat id belongs to.
// ENUM(user,group,channel)
type BareChatKind string

// EntityType is the discriminator of a MessageEntity.
// ENUM(mention,hashtag,cashtag,bot_command,url,email,phone_number,bold,italic,code,pre,text_link,text_mention,underline,strikethrough,spoiler)
type EntityType string

// MessageKindName names a MessageKind variant. Declaration order is the
// order in which the resolver tries the variants.
// ENUM(common,new_chat_members,left_chat_member,new_chat_title,new_chat_photo,delete_chat_photo,group_chat_created,supergroup_chat_created,channel_chat_created,auto_delete_timer_changed,pinned,invoice,successful_payment,connected_website,passport_data,dice,proximity_alert_triggered,voice_chat_scheduled,voice_chat_started,voice_chat_ended,voice_chat_participants_invited,web_app_data)
type MessageKindName string

// MediaKindName names a MediaKind variant. Declaration order is the order in
// which the resolver tries the variants: venue before location and
// animation before document, since those records duplicate the simpler
// shape for backward compatibility.
// ENUM(animation,audio,contact,document,game,venue,location,photo,poll,sticker,text,video,video_note,voice,migration)
type MediaKindName string

// MigrationDirection is the side of a group to supergroup migration a
// message was delivered to.
// ENUM(to,from)
type MigrationDirection string

// PollType is the kind of a poll.
// ENUM(regular,quiz)
type PollType string

// ParseMode selects the markup used to format message text.
// ENUM(MarkdownV2,HTML,Markdown)
type ParseMode string
