package models

// AppInfoAliases maps AppInfo's internal field names to their wire keys.
var AppInfoAliases = wireAliases(nil,
	"app_version",
	"db_version",
	"node_version",
	"sync_version",
	"build_date",
	"build_revision",
	"data_directory",
	"clipper_protocol_version",
	"utc_date_time",
)

// AppInfo is a read-only snapshot of server metadata, constructed only
// from a GET /etapi/app-info response. Only the app version is required;
// the remaining fields vary across server versions and default to zero
// values when absent.
type AppInfo struct {
	AppVersion             string
	DBVersion              int
	NodeVersion            string
	SyncVersion            int
	BuildDate              string
	BuildRevision          string
	DataDirectory          string
	ClipperProtocolVersion string
	UTCDateTime            string
}

func (i *AppInfo) UnmarshalJSON(data []byte) error {
	obj, err := decodeWireObject(data)
	if err != nil {
		return err
	}

	if err := obj.require(AppInfoAliases["app_version"], &i.AppVersion); err != nil {
		return err
	}

	for alias, dest := range map[string]any{
		AppInfoAliases["db_version"]:               &i.DBVersion,
		AppInfoAliases["node_version"]:             &i.NodeVersion,
		AppInfoAliases["sync_version"]:             &i.SyncVersion,
		AppInfoAliases["build_date"]:               &i.BuildDate,
		AppInfoAliases["build_revision"]:           &i.BuildRevision,
		AppInfoAliases["data_directory"]:           &i.DataDirectory,
		AppInfoAliases["clipper_protocol_version"]: &i.ClipperProtocolVersion,
		AppInfoAliases["utc_date_time"]:            &i.UTCDateTime,
	} {
		if err := obj.optional(alias, dest); err != nil {
			return err
		}
	}

	return nil
}
