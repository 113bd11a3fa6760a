// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locales

// Message ids. Each id has an entry in every embedded catalogue.
const (
	MsgAppTitle             = "AppTitle"
	MsgInputPlaceholder     = "InputPlaceholder"
	MsgWaitingForInput      = "WaitingForInput"
	MsgMainHotkeys          = "MainHotkeys"
	MsgExitHint             = "ExitHint"
	MsgOutputTitle          = "OutputTitle"
	MsgLanguageName         = "LanguageName"
	MsgLanguageSwitched     = "LanguageSwitched"
	MsgEnterTarget          = "EnterTarget"
	MsgEnterCheckTarget     = "EnterCheckTarget"
	MsgOperationInProgress  = "OperationInProgress"
	MsgParsingAddress       = "ParsingAddress"
	MsgInvalidInput         = "InvalidInput"
	MsgInvalidRequest       = "InvalidRequest"
	MsgPerformingCheck      = "PerformingCheck"
	MsgAborting             = "Aborting"
	MsgClipboardEmpty       = "ClipboardEmpty"
	MsgExitTitle            = "ExitTitle"
	MsgExitConfirm          = "ExitConfirm"
	MsgDialogYes            = "DialogYes"
	MsgDialogNo             = "DialogNo"
	MsgDialogPasswordHint   = "DialogPasswordHint"
	MsgDialogChoiceHint     = "DialogChoiceHint"
	MsgRemoteFound          = "RemoteFound"
	MsgRemoteDetected       = "RemoteDetected"
	MsgCacheClearing        = "CacheClearing"
	MsgCacheCleared         = "CacheCleared"
	MsgCacheNotFound        = "CacheNotFound"
	MsgCacheError           = "CacheError"
	MsgCacheSkipped         = "CacheSkipped"
	MsgRequestingPassword   = "RequestingPassword"
	MsgPasswordTitle        = "PasswordTitle"
	MsgPasswordPrompt       = "PasswordPrompt"
	MsgLaunching            = "Launching"
	MsgExecutableMissing    = "ExecutableMissing"
	MsgLaunched             = "Launched"
	MsgLaunchedDetails      = "LaunchedDetails"
	MsgLaunchFailed         = "LaunchFailed"
	MsgLaunchFailedTitle    = "LaunchFailedTitle"
	MsgNoPasswordEntered    = "NoPasswordEntered"
	MsgNoPasswordDetails    = "NoPasswordDetails"
	MsgLaunchCanceled       = "LaunchCanceled"
	MsgRequestingServerInfo = "RequestingServerInfo"
	MsgCheckCompleted       = "CheckCompleted"
	MsgCheckCanceled        = "CheckCanceled"
	MsgCheckFailed          = "CheckFailed"
	MsgCheckSummary         = "CheckSummary"
	MsgCheckAppTypeUnknown  = "CheckAppTypeUnknown"
	MsgSendingRequest       = "SendingRequest"
	MsgProcessingResponse   = "ProcessingResponse"
	MsgAppTypeDetected      = "AppTypeDetected"
	MsgAppTypeTitle         = "AppTypeTitle"
	MsgAppTypeQuestion      = "AppTypeQuestion"
	MsgCheckingServerState  = "CheckingServerState"
	MsgServerStateTitle     = "ServerStateTitle"
	MsgServerStateQuestion  = "ServerStateQuestion"
	MsgServerStateOK        = "ServerStateOK"
	MsgVersionFormatted     = "VersionFormatted"
	MsgInstallerName        = "InstallerName"
	MsgLocalCheck           = "LocalCheck"
	MsgLocalFound           = "LocalFound"
	MsgVendorMismatch       = "VendorMismatch"
	MsgRemoteDownload       = "RemoteDownload"
	MsgDownloading          = "Downloading"
	MsgSourceFailed         = "SourceFailed"
	MsgExtracting           = "Extracting"
	MsgInstallerReady       = "InstallerReady"
	MsgInstallerNotFound    = "InstallerNotFound"
	MsgAppDataCleanup       = "AppDataCleanup"
	MsgAppDataCleared       = "AppDataCleared"
	MsgAppDataNotFound      = "AppDataNotFound"
	MsgAppDataError         = "AppDataError"
	MsgFirstRun             = "FirstRun"
	MsgBackOfficeStarted    = "BackOfficeStarted"
	MsgWaitingConfig        = "WaitingConfig"
	MsgEditingConfig        = "EditingConfig"
	MsgConfigEdited         = "ConfigEdited"
	MsgRestarting           = "Restarting"
	MsgDeployDone           = "DeployDone"
	MsgOperationCanceled    = "OperationCanceled"
	MsgDeployFailed         = "DeployFailed"
	MsgErrProbe             = "ErrProbe"
	MsgErrNetwork           = "ErrNetwork"
	MsgErrFileSystem        = "ErrFileSystem"
	MsgErrExecutableMissing = "ErrExecutableMissing"
	MsgErrLaunch            = "ErrLaunch"
	MsgErrCanceledByUser    = "ErrCanceledByUser"
	MsgErrNoPassword        = "ErrNoPassword"
	MsgErrTimeout           = "ErrTimeout"
	MsgErrGeneric           = "ErrGeneric"
	MsgBookTitle            = "BookTitle"
	MsgBookHotkeys          = "BookHotkeys"
	MsgBookEmpty            = "BookEmpty"
	MsgBookSearch           = "BookSearch"
	MsgBookNew              = "BookNew"
	MsgBookEdit             = "BookEdit"
	MsgBookFieldName        = "BookFieldName"
	MsgBookFieldID          = "BookFieldID"
	MsgBookFieldClient      = "BookFieldClient"
	MsgBookFormHotkeys      = "BookFormHotkeys"
	MsgBookDeleteConfirm    = "BookDeleteConfirm"
	MsgBookSaved            = "BookSaved"
	MsgBookDeleted          = "BookDeleted"
	MsgBookSelected         = "BookSelected"
	MsgBookImported         = "BookImported"
	MsgBookInvalid          = "BookInvalid"
	MsgBookDuplicate        = "BookDuplicate"
	MsgBookAll              = "BookAll"
	MsgAboutTitle           = "AboutTitle"
	MsgAboutBody            = "AboutBody"
	MsgBackHint             = "BackHint"
)
