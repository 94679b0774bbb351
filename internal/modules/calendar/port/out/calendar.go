package out

import journaldomain "gentlemind/internal/modules/journal/domain"

type RecordSource interface {
	Records() []journaldomain.Record
}
