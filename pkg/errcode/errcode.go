package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBNotConnectedError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBEmptyDatabaseError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaCollationError

	// Dataset errors
	DatasetFormatError
	DatasetReadError
	DatasetWriteError
	DatasetIntegrityError

	// Populate errors
	PopulateParseError
	PopulateTruncateError
	PopulateInsertError
	PopulateTransactionError

	// Key and ranking errors
	KeyNotFoundError
	KeyQueryError
	KeyAnswerFormatError
	RankInvalidArgumentError
	RankDataIntegrityError
	RankRepositoryError
)
