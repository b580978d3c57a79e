package entity

// Android SDK levels referenced by the action metadata.
const (
	SdkJellyBeanMR2 = 18
	SdkMarshmallow  = 23
	SdkNougat       = 24
	SdkOreo         = 26
	SdkPie          = 28
	SdkQ            = 29
)

// ActionCategory groups actions for listing.
type ActionCategory string

const (
	CategoryApps          ActionCategory = "apps"
	CategoryInput         ActionCategory = "input"
	CategoryNavigation    ActionCategory = "navigation"
	CategoryVolume        ActionCategory = "volume"
	CategoryDisplay       ActionCategory = "display"
	CategoryConnectivity  ActionCategory = "connectivity"
	CategoryCameraSound   ActionCategory = "camera_sound"
	CategoryKeyboard      ActionCategory = "keyboard"
	CategoryMedia         ActionCategory = "media"
	CategoryTelephony     ActionCategory = "telephony"
	CategoryInterface     ActionCategory = "interface"
	CategoryContent       ActionCategory = "content"
	CategoryNotifications ActionCategory = "notifications"
	CategorySpecial       ActionCategory = "special"
)

// PermissionRequirement is a permission an action needs on a range of SDK levels.
// Zero bounds are open.
type PermissionRequirement struct {
	Permission Permission
	FromSdk    int
	UntilSdk   int
}

func (r PermissionRequirement) appliesTo(sdk int) bool {
	if r.FromSdk != 0 && sdk < r.FromSdk {
		return false
	}
	if r.UntilSdk != 0 && sdk > r.UntilSdk {
		return false
	}
	return true
}

// ActionInfo is the static metadata of an action kind.
type ActionInfo struct {
	Category       ActionCategory
	MinSdk         int
	MaxSdk         int
	SystemFeatures []SystemFeature
	Permissions    []PermissionRequirement

	// CanUseShizuku means the action can be performed through the privileged bridge.
	CanUseShizuku bool
	// CanUseIme means the action can be performed by a compatible input method.
	CanUseIme bool
}

// RequiredPermissions returns the permissions needed on the given SDK level, in table order.
func (i ActionInfo) RequiredPermissions(sdk int) []Permission {
	var perms []Permission
	for _, req := range i.Permissions {
		if req.appliesTo(sdk) {
			perms = append(perms, req.Permission)
		}
	}
	return perms
}

func needs(p Permission) PermissionRequirement { return PermissionRequirement{Permission: p} }

func needsFrom(p Permission, sdk int) PermissionRequirement {
	return PermissionRequirement{Permission: p, FromSdk: sdk}
}

func needsUntil(p Permission, sdk int) PermissionRequirement {
	return PermissionRequirement{Permission: p, UntilSdk: sdk}
}

var (
	dndPolicy      = []PermissionRequirement{needsFrom(PermissionAccessNotificationPolicy, SdkMarshmallow)}
	writeSettings  = []PermissionRequirement{needs(PermissionWriteSettings)}
	rootOnly       = []PermissionRequirement{needs(PermissionRoot)}
	notifListener  = []PermissionRequirement{needs(PermissionNotificationListener)}
	cameraPerm     = []PermissionRequirement{needs(PermissionCamera)}
	rootFromQ      = []PermissionRequirement{needsFrom(PermissionRoot, SdkQ)}
	flashFeature   = []SystemFeature{SystemFeatureCameraFlash}
	nfcFeature     = []SystemFeature{SystemFeatureNfc}
	phoneFeature   = []SystemFeature{SystemFeatureTelephony}
	wifiFeature    = []SystemFeature{SystemFeatureWifi}
	btFeature      = []SystemFeature{SystemFeatureBluetooth}
	imeInput       = ActionInfo{Category: CategoryContent, CanUseIme: true}
	imeInputJBMR2  = ActionInfo{Category: CategoryContent, CanUseIme: true, MinSdk: SdkJellyBeanMR2}
	volumeInfo     = ActionInfo{Category: CategoryVolume, Permissions: dndPolicy}
	volumeMuteInfo = ActionInfo{Category: CategoryVolume, MinSdk: SdkMarshmallow, Permissions: dndPolicy}
	rotationInfo   = ActionInfo{Category: CategoryDisplay, Permissions: writeSettings}
	brightnessInfo = ActionInfo{Category: CategoryDisplay, Permissions: writeSettings}
	mediaForApp    = ActionInfo{Category: CategoryMedia, Permissions: notifListener}
	mediaInfo      = ActionInfo{Category: CategoryMedia}
	flashInfo      = ActionInfo{Category: CategoryCameraSound, MinSdk: SdkMarshmallow, SystemFeatures: flashFeature, Permissions: cameraPerm}
	dndInfo        = ActionInfo{Category: CategoryVolume, MinSdk: SdkMarshmallow, Permissions: dndPolicy}
	wifiInfo       = ActionInfo{Category: CategoryConnectivity, SystemFeatures: wifiFeature, Permissions: rootFromQ}
	btInfo         = ActionInfo{Category: CategoryConnectivity, SystemFeatures: btFeature}
	nfcInfo        = ActionInfo{Category: CategoryConnectivity, SystemFeatures: nfcFeature, Permissions: rootOnly}
	airplaneInfo   = ActionInfo{Category: CategoryConnectivity, Permissions: rootOnly}
	mobileDataInfo = ActionInfo{Category: CategoryConnectivity, SystemFeatures: phoneFeature, Permissions: rootOnly}
	statusBarInfo  = ActionInfo{Category: CategoryInterface}
	navigationInfo = ActionInfo{Category: CategoryNavigation}
	keyboardNInfo  = ActionInfo{Category: CategoryKeyboard, MinSdk: SdkNougat}
	dismissNotif   = ActionInfo{Category: CategoryNotifications, Permissions: notifListener}
)

var actionInfo = map[ActionID]ActionInfo{
	ActionIDApp:         {Category: CategoryApps},
	ActionIDAppShortcut: {Category: CategoryApps},
	ActionIDKeyEvent:    {Category: CategoryInput, CanUseIme: true, CanUseShizuku: true},
	ActionIDSound:       {Category: CategoryCameraSound},

	ActionIDVolumeUp:         volumeInfo,
	ActionIDVolumeDown:       volumeInfo,
	ActionIDVolumeMute:       volumeMuteInfo,
	ActionIDVolumeUnmute:     volumeMuteInfo,
	ActionIDVolumeToggleMute: volumeMuteInfo,
	ActionIDVolumeShowDialog: {Category: CategoryVolume},

	ActionIDChangeRingerMode: volumeInfo,
	ActionIDCycleRingerMode:  volumeInfo,
	ActionIDCycleVibrateRing: volumeInfo,

	ActionIDToggleFlashlight:  flashInfo,
	ActionIDEnableFlashlight:  flashInfo,
	ActionIDDisableFlashlight: flashInfo,

	ActionIDSwitchKeyboard: {
		Category:    CategoryKeyboard,
		Permissions: []PermissionRequirement{needs(PermissionWriteSecureSettings)},
	},

	ActionIDToggleDndMode:  dndInfo,
	ActionIDEnableDndMode:  dndInfo,
	ActionIDDisableDndMode: dndInfo,

	ActionIDEnableAutoRotate:  rotationInfo,
	ActionIDDisableAutoRotate: rotationInfo,
	ActionIDToggleAutoRotate:  rotationInfo,
	ActionIDPortraitMode:      rotationInfo,
	ActionIDLandscapeMode:     rotationInfo,
	ActionIDSwitchOrientation: rotationInfo,
	ActionIDCycleRotations:    rotationInfo,

	ActionIDPauseMediaPackage:     mediaForApp,
	ActionIDPlayMediaPackage:      mediaForApp,
	ActionIDPlayPauseMediaPackage: mediaForApp,
	ActionIDNextTrackPackage:      mediaForApp,
	ActionIDPreviousTrackPackage:  mediaForApp,
	ActionIDFastForwardPackage:    mediaForApp,
	ActionIDRewindPackage:         mediaForApp,

	ActionIDPauseMedia:     mediaInfo,
	ActionIDPlayMedia:      mediaInfo,
	ActionIDPlayPauseMedia: mediaInfo,
	ActionIDNextTrack:      mediaInfo,
	ActionIDPreviousTrack:  mediaInfo,
	ActionIDFastForward:    mediaInfo,
	ActionIDRewind:         mediaInfo,

	ActionIDIntent:    {Category: CategorySpecial},
	ActionIDTapScreen: {Category: CategoryInput},
	ActionIDPhoneCall: {
		Category:       CategoryTelephony,
		SystemFeatures: phoneFeature,
		Permissions:    []PermissionRequirement{needs(PermissionCallPhone)},
	},
	ActionIDURL:  {Category: CategoryApps},
	ActionIDText: imeInput,

	ActionIDEnableWifi:  wifiInfo,
	ActionIDDisableWifi: wifiInfo,
	ActionIDToggleWifi:  wifiInfo,

	ActionIDEnableBluetooth:  btInfo,
	ActionIDDisableBluetooth: btInfo,
	ActionIDToggleBluetooth:  btInfo,

	ActionIDEnableNfc:  nfcInfo,
	ActionIDDisableNfc: nfcInfo,
	ActionIDToggleNfc:  nfcInfo,

	ActionIDEnableAirplaneMode:  airplaneInfo,
	ActionIDDisableAirplaneMode: airplaneInfo,
	ActionIDToggleAirplaneMode:  airplaneInfo,

	ActionIDEnableMobileData:  mobileDataInfo,
	ActionIDDisableMobileData: mobileDataInfo,
	ActionIDToggleMobileData:  mobileDataInfo,

	ActionIDEnableAutoBrightness:  brightnessInfo,
	ActionIDDisableAutoBrightness: brightnessInfo,
	ActionIDToggleAutoBrightness:  brightnessInfo,
	ActionIDIncreaseBrightness:    brightnessInfo,
	ActionIDDecreaseBrightness:    brightnessInfo,

	ActionIDExpandNotificationDrawer: statusBarInfo,
	ActionIDToggleNotificationDrawer: statusBarInfo,
	ActionIDExpandQuickSettings:      statusBarInfo,
	ActionIDToggleQuickSettings:      statusBarInfo,
	ActionIDCollapseStatusBar:        statusBarInfo,

	ActionIDGoBack:            navigationInfo,
	ActionIDGoHome:            navigationInfo,
	ActionIDOpenRecents:       navigationInfo,
	ActionIDGoLastApp:         {Category: CategoryNavigation, MinSdk: SdkNougat},
	ActionIDOpenMenu:          navigationInfo,
	ActionIDToggleSplitScreen: {Category: CategoryNavigation, MinSdk: SdkNougat},
	ActionIDScreenshot: {
		Category:    CategoryInterface,
		Permissions: []PermissionRequirement{needsUntil(PermissionRoot, SdkPie-1)},
	},
	ActionIDMoveCursorToEnd:     imeInput,
	ActionIDToggleKeyboard:      keyboardNInfo,
	ActionIDShowKeyboard:        keyboardNInfo,
	ActionIDHideKeyboard:        keyboardNInfo,
	ActionIDShowKeyboardPicker:  {Category: CategoryKeyboard, MaxSdk: SdkPie},
	ActionIDTextCopy:            imeInputJBMR2,
	ActionIDTextPaste:           imeInputJBMR2,
	ActionIDTextCut:             imeInputJBMR2,
	ActionIDSelectWordAtCursor:  imeInputJBMR2,
	ActionIDOpenVoiceAssistant:  {Category: CategoryApps},
	ActionIDOpenDeviceAssistant: {Category: CategoryApps},
	ActionIDOpenCamera:          {Category: CategoryCameraSound},
	ActionIDLockDevice: {
		Category:    CategoryInterface,
		Permissions: []PermissionRequirement{needsUntil(PermissionRoot, SdkPie-1)},
	},
	ActionIDPowerOnOffDevice: {Category: CategoryInterface, Permissions: rootOnly},
	ActionIDSecureLockDevice: {
		Category:       CategoryInterface,
		SystemFeatures: []SystemFeature{SystemFeatureDeviceAdmin},
		Permissions:    []PermissionRequirement{needs(PermissionDeviceAdmin)},
	},
	ActionIDConsumeKeyEvent:               {Category: CategorySpecial},
	ActionIDOpenSettings:                  {Category: CategoryInterface},
	ActionIDShowPowerMenu:                 {Category: CategoryInterface},
	ActionIDDismissMostRecentNotification: dismissNotif,
	ActionIDDismissAllNotifications:       dismissNotif,
	ActionIDAnswerPhoneCall: {
		Category:       CategoryTelephony,
		MinSdk:         SdkOreo,
		SystemFeatures: phoneFeature,
		Permissions:    []PermissionRequirement{needs(PermissionAnswerPhoneCall)},
	},
	ActionIDEndPhoneCall: {
		Category:       CategoryTelephony,
		MinSdk:         SdkPie,
		SystemFeatures: phoneFeature,
		Permissions:    []PermissionRequirement{needs(PermissionAnswerPhoneCall)},
	},
}

// LookupActionInfo returns the metadata for id and whether id is a known kind.
func LookupActionInfo(id ActionID) (ActionInfo, bool) {
	info, ok := actionInfo[id]
	return info, ok
}

// AllActionIDs returns every known action kind.
func AllActionIDs() []ActionID {
	ids := make([]ActionID, 0, len(actionInfo))
	for id := range actionInfo {
		ids = append(ids, id)
	}
	return ids
}
