// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locales

var allMessageIDs = []string{
	MsgAppTitle,
	MsgInputPlaceholder,
	MsgWaitingForInput,
	MsgMainHotkeys,
	MsgExitHint,
	MsgOutputTitle,
	MsgLanguageName,
	MsgLanguageSwitched,
	MsgEnterTarget,
	MsgEnterCheckTarget,
	MsgOperationInProgress,
	MsgParsingAddress,
	MsgInvalidInput,
	MsgInvalidRequest,
	MsgPerformingCheck,
	MsgAborting,
	MsgClipboardEmpty,
	MsgExitTitle,
	MsgExitConfirm,
	MsgDialogYes,
	MsgDialogNo,
	MsgDialogPasswordHint,
	MsgDialogChoiceHint,
	MsgRemoteFound,
	MsgRemoteDetected,
	MsgCacheClearing,
	MsgCacheCleared,
	MsgCacheNotFound,
	MsgCacheError,
	MsgCacheSkipped,
	MsgRequestingPassword,
	MsgPasswordTitle,
	MsgPasswordPrompt,
	MsgLaunching,
	MsgExecutableMissing,
	MsgLaunched,
	MsgLaunchedDetails,
	MsgLaunchFailed,
	MsgLaunchFailedTitle,
	MsgNoPasswordEntered,
	MsgNoPasswordDetails,
	MsgLaunchCanceled,
	MsgRequestingServerInfo,
	MsgCheckCompleted,
	MsgCheckCanceled,
	MsgCheckFailed,
	MsgCheckSummary,
	MsgCheckAppTypeUnknown,
	MsgSendingRequest,
	MsgProcessingResponse,
	MsgAppTypeDetected,
	MsgAppTypeTitle,
	MsgAppTypeQuestion,
	MsgCheckingServerState,
	MsgServerStateTitle,
	MsgServerStateQuestion,
	MsgServerStateOK,
	MsgVersionFormatted,
	MsgInstallerName,
	MsgLocalCheck,
	MsgLocalFound,
	MsgVendorMismatch,
	MsgRemoteDownload,
	MsgDownloading,
	MsgSourceFailed,
	MsgExtracting,
	MsgInstallerReady,
	MsgInstallerNotFound,
	MsgAppDataCleanup,
	MsgAppDataCleared,
	MsgAppDataNotFound,
	MsgAppDataError,
	MsgFirstRun,
	MsgBackOfficeStarted,
	MsgWaitingConfig,
	MsgEditingConfig,
	MsgConfigEdited,
	MsgRestarting,
	MsgDeployDone,
	MsgOperationCanceled,
	MsgDeployFailed,
	MsgErrProbe,
	MsgErrNetwork,
	MsgErrFileSystem,
	MsgErrExecutableMissing,
	MsgErrLaunch,
	MsgErrCanceledByUser,
	MsgErrNoPassword,
	MsgErrTimeout,
	MsgErrGeneric,
	MsgBookTitle,
	MsgBookHotkeys,
	MsgBookEmpty,
	MsgBookSearch,
	MsgBookNew,
	MsgBookEdit,
	MsgBookFieldName,
	MsgBookFieldID,
	MsgBookFieldClient,
	MsgBookFormHotkeys,
	MsgBookDeleteConfirm,
	MsgBookSaved,
	MsgBookDeleted,
	MsgBookSelected,
	MsgBookImported,
	MsgBookInvalid,
	MsgBookDuplicate,
	MsgBookAll,
	MsgAboutTitle,
	MsgAboutBody,
	MsgBackHint,
}
