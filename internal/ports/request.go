package ports

import "casa-calmap/internal/types"

type FlagRequestPort interface {
	LoadFlagRequest(path string) (types.FlagRequestFile, error)
	LoadMatchRecords(path string) (types.MatchRecordsFile, error)
}
