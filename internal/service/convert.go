package service

import (
	"FutureMe/internal/api/dto"
	"FutureMe/internal/model"
	"time"

	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return src.(time.Time).UTC().Format(time.RFC3339), nil
			},
		},
	},
}

func toEntryDTO(entry *model.Entry) (*dto.EntryDTO, error) {
	entryDTO := &dto.EntryDTO{}
	if err := copier.CopyWithOption(entryDTO, entry, copyOption); err != nil {
		return nil, err
	}
	return entryDTO, nil
}

func toEntryDTOs(entries []*model.Entry) ([]*dto.EntryDTO, error) {
	result := make([]*dto.EntryDTO, 0, len(entries))
	for _, entry := range entries {
		entryDTO, err := toEntryDTO(entry)
		if err != nil {
			return nil, err
		}
		result = append(result, entryDTO)
	}
	return result, nil
}

func toReplyDTOs(replies []*model.Reply) ([]*dto.ReplyDTO, error) {
	result := make([]*dto.ReplyDTO, 0, len(replies))
	for _, reply := range replies {
		replyDTO := &dto.ReplyDTO{}
		if err := copier.CopyWithOption(replyDTO, reply, copyOption); err != nil {
			return nil, err
		}
		result = append(result, replyDTO)
	}
	return result, nil
}
