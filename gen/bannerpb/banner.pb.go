// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: banner.proto

package bannerpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type RecordBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Experiment    string                 `protobuf:"bytes,1,opt,name=experiment,proto3" json:"experiment,omitempty"`
	Variant       string                 `protobuf:"bytes,2,opt,name=variant,proto3" json:"variant,omitempty"`
	Day           int32                  `protobuf:"varint,3,opt,name=day,proto3" json:"day,omitempty"`
	Impressions   int64                  `protobuf:"varint,4,opt,name=impressions,proto3" json:"impressions,omitempty"`
	Clicks        int64                  `protobuf:"varint,5,opt,name=clicks,proto3" json:"clicks,omitempty"`
	Outcomes      []int64                `protobuf:"varint,6,rep,packed,name=outcomes,proto3" json:"outcomes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordBatchRequest) Reset() {
	*x = RecordBatchRequest{}
	mi := &file_banner_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordBatchRequest) ProtoMessage() {}

func (x *RecordBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_banner_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordBatchRequest.ProtoReflect.Descriptor instead.
func (*RecordBatchRequest) Descriptor() ([]byte, []int) {
	return file_banner_proto_rawDescGZIP(), []int{0}
}

func (x *RecordBatchRequest) GetExperiment() string {
	if x != nil {
		return x.Experiment
	}
	return ""
}

func (x *RecordBatchRequest) GetVariant() string {
	if x != nil {
		return x.Variant
	}
	return ""
}

func (x *RecordBatchRequest) GetDay() int32 {
	if x != nil {
		return x.Day
	}
	return 0
}

func (x *RecordBatchRequest) GetImpressions() int64 {
	if x != nil {
		return x.Impressions
	}
	return 0
}

func (x *RecordBatchRequest) GetClicks() int64 {
	if x != nil {
		return x.Clicks
	}
	return 0
}

func (x *RecordBatchRequest) GetOutcomes() []int64 {
	if x != nil {
		return x.Outcomes
	}
	return nil
}

type RecordBatchReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecordBatchReply) Reset() {
	*x = RecordBatchReply{}
	mi := &file_banner_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordBatchReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordBatchReply) ProtoMessage() {}

func (x *RecordBatchReply) ProtoReflect() protoreflect.Message {
	mi := &file_banner_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecordBatchReply.ProtoReflect.Descriptor instead.
func (*RecordBatchReply) Descriptor() ([]byte, []int) {
	return file_banner_proto_rawDescGZIP(), []int{1}
}

type RunAnalysisRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Experiment string                 `protobuf:"bytes,1,opt,name=experiment,proto3" json:"experiment,omitempty"`
	// Prior preset name; empty selects the server default.
	Prior         string `protobuf:"bytes,2,opt,name=prior,proto3" json:"prior,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunAnalysisRequest) Reset() {
	*x = RunAnalysisRequest{}
	mi := &file_banner_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunAnalysisRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunAnalysisRequest) ProtoMessage() {}

func (x *RunAnalysisRequest) ProtoReflect() protoreflect.Message {
	mi := &file_banner_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunAnalysisRequest.ProtoReflect.Descriptor instead.
func (*RunAnalysisRequest) Descriptor() ([]byte, []int) {
	return file_banner_proto_rawDescGZIP(), []int{2}
}

func (x *RunAnalysisRequest) GetExperiment() string {
	if x != nil {
		return x.Experiment
	}
	return ""
}

func (x *RunAnalysisRequest) GetPrior() string {
	if x != nil {
		return x.Prior
	}
	return ""
}

type AnalysisReply struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	RunId               string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Decision            string                 `protobuf:"bytes,2,opt,name=decision,proto3" json:"decision,omitempty"`
	Reason              string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	ProbChallengerBeats float64                `protobuf:"fixed64,4,opt,name=prob_challenger_beats,json=probChallengerBeats,proto3" json:"prob_challenger_beats,omitempty"`
	MeanLift            float64                `protobuf:"fixed64,5,opt,name=mean_lift,json=meanLift,proto3" json:"mean_lift,omitempty"`
	// Full pipeline.RunResult encoded as JSON.
	SummaryJson   string `protobuf:"bytes,6,opt,name=summary_json,json=summaryJson,proto3" json:"summary_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalysisReply) Reset() {
	*x = AnalysisReply{}
	mi := &file_banner_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalysisReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalysisReply) ProtoMessage() {}

func (x *AnalysisReply) ProtoReflect() protoreflect.Message {
	mi := &file_banner_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalysisReply.ProtoReflect.Descriptor instead.
func (*AnalysisReply) Descriptor() ([]byte, []int) {
	return file_banner_proto_rawDescGZIP(), []int{3}
}

func (x *AnalysisReply) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *AnalysisReply) GetDecision() string {
	if x != nil {
		return x.Decision
	}
	return ""
}

func (x *AnalysisReply) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *AnalysisReply) GetProbChallengerBeats() float64 {
	if x != nil {
		return x.ProbChallengerBeats
	}
	return 0
}

func (x *AnalysisReply) GetMeanLift() float64 {
	if x != nil {
		return x.MeanLift
	}
	return 0
}

func (x *AnalysisReply) GetSummaryJson() string {
	if x != nil {
		return x.SummaryJson
	}
	return ""
}

type GetSummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSummaryRequest) Reset() {
	*x = GetSummaryRequest{}
	mi := &file_banner_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSummaryRequest) ProtoMessage() {}

func (x *GetSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_banner_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSummaryRequest.ProtoReflect.Descriptor instead.
func (*GetSummaryRequest) Descriptor() ([]byte, []int) {
	return file_banner_proto_rawDescGZIP(), []int{4}
}

func (x *GetSummaryRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type ListExperimentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExperimentsRequest) Reset() {
	*x = ListExperimentsRequest{}
	mi := &file_banner_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExperimentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExperimentsRequest) ProtoMessage() {}

func (x *ListExperimentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_banner_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExperimentsRequest.ProtoReflect.Descriptor instead.
func (*ListExperimentsRequest) Descriptor() ([]byte, []int) {
	return file_banner_proto_rawDescGZIP(), []int{5}
}

type ExperimentInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExperimentId  string                 `protobuf:"bytes,1,opt,name=experiment_id,json=experimentId,proto3" json:"experiment_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	OutcomeLabels []string               `protobuf:"bytes,3,rep,name=outcome_labels,json=outcomeLabels,proto3" json:"outcome_labels,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExperimentInfo) Reset() {
	*x = ExperimentInfo{}
	mi := &file_banner_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExperimentInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExperimentInfo) ProtoMessage() {}

func (x *ExperimentInfo) ProtoReflect() protoreflect.Message {
	mi := &file_banner_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExperimentInfo.ProtoReflect.Descriptor instead.
func (*ExperimentInfo) Descriptor() ([]byte, []int) {
	return file_banner_proto_rawDescGZIP(), []int{6}
}

func (x *ExperimentInfo) GetExperimentId() string {
	if x != nil {
		return x.ExperimentId
	}
	return ""
}

func (x *ExperimentInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ExperimentInfo) GetOutcomeLabels() []string {
	if x != nil {
		return x.OutcomeLabels
	}
	return nil
}

func (x *ExperimentInfo) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListExperimentsReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Experiments   []*ExperimentInfo      `protobuf:"bytes,1,rep,name=experiments,proto3" json:"experiments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExperimentsReply) Reset() {
	*x = ListExperimentsReply{}
	mi := &file_banner_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExperimentsReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExperimentsReply) ProtoMessage() {}

func (x *ListExperimentsReply) ProtoReflect() protoreflect.Message {
	mi := &file_banner_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExperimentsReply.ProtoReflect.Descriptor instead.
func (*ListExperimentsReply) Descriptor() ([]byte, []int) {
	return file_banner_proto_rawDescGZIP(), []int{7}
}

func (x *ListExperimentsReply) GetExperiments() []*ExperimentInfo {
	if x != nil {
		return x.Experiments
	}
	return nil
}

var File_banner_proto protoreflect.FileDescriptor

const file_banner_proto_rawDesc = "" +
	"\n" +
	"\fbanner.proto\x12\bbannerpb\"\xb6\x01\n" +
	"\x12RecordBatchRequest\x12\x1e\n" +
	"\n" +
	"experiment\x18\x01 \x01(\tR\n" +
	"experiment\x12\x18\n" +
	"\avariant\x18\x02 \x01(\tR\avariant\x12\x10\n" +
	"\x03day\x18\x03 \x01(\x05R\x03day\x12 \n" +
	"\vimpressions\x18\x04 \x01(\x03R\vimpressions\x12\x16\n" +
	"\x06clicks\x18\x05 \x01(\x03R\x06clicks\x12\x1a\n" +
	"\boutcomes\x18\x06 \x03(\x03R\boutcomes\"\x12\n" +
	"\x10RecordBatchReply\"J\n" +
	"\x12RunAnalysisRequest\x12\x1e\n" +
	"\n" +
	"experiment\x18\x01 \x01(\tR\n" +
	"experiment\x12\x14\n" +
	"\x05prior\x18\x02 \x01(\tR\x05prior\"\xce\x01\n" +
	"\rAnalysisReply\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x1a\n" +
	"\bdecision\x18\x02 \x01(\tR\bdecision\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\x122\n" +
	"\x15prob_challenger_beats\x18\x04 \x01(\x01R\x13probChallengerBeats\x12\x1b\n" +
	"\tmean_lift\x18\x05 \x01(\x01R\bmeanLift\x12!\n" +
	"\fsummary_json\x18\x06 \x01(\tR\vsummaryJson\"*\n" +
	"\x11GetSummaryRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\"\x18\n" +
	"\x16ListExperimentsRequest\"\x8f\x01\n" +
	"\x0eExperimentInfo\x12#\n" +
	"\rexperiment_id\x18\x01 \x01(\tR\fexperimentId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12%\n" +
	"\x0eoutcome_labels\x18\x03 \x03(\tR\routcomeLabels\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\"R\n" +
	"\x14ListExperimentsReply\x12:\n" +
	"\vexperiments\x18\x01 \x03(\v2\x18.bannerpb.ExperimentInfoR\vexperiments2\xb8\x02\n" +
	"\x0eBannerAnalysis\x12G\n" +
	"\vRecordBatch\x12\x1c.bannerpb.RecordBatchRequest\x1a\x1a.bannerpb.RecordBatchReply\x12D\n" +
	"\vRunAnalysis\x12\x1c.bannerpb.RunAnalysisRequest\x1a\x17.bannerpb.AnalysisReply\x12B\n" +
	"\n" +
	"GetSummary\x12\x1b.bannerpb.GetSummaryRequest\x1a\x17.bannerpb.AnalysisReply\x12S\n" +
	"\x0fListExperiments\x12 .bannerpb.ListExperimentsRequest\x1a\x1e.bannerpb.ListExperimentsReplyBBZ@github.com/danielpatrickdp/banner-bayes/go-analyzer/gen/bannerpbb\x06proto3"

var (
	file_banner_proto_rawDescOnce sync.Once
	file_banner_proto_rawDescData []byte
)

func file_banner_proto_rawDescGZIP() []byte {
	file_banner_proto_rawDescOnce.Do(func() {
		file_banner_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_banner_proto_rawDesc), len(file_banner_proto_rawDesc)))
	})
	return file_banner_proto_rawDescData
}

var file_banner_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_banner_proto_goTypes = []any{
	(*RecordBatchRequest)(nil),     // 0: bannerpb.RecordBatchRequest
	(*RecordBatchReply)(nil),       // 1: bannerpb.RecordBatchReply
	(*RunAnalysisRequest)(nil),     // 2: bannerpb.RunAnalysisRequest
	(*AnalysisReply)(nil),          // 3: bannerpb.AnalysisReply
	(*GetSummaryRequest)(nil),      // 4: bannerpb.GetSummaryRequest
	(*ListExperimentsRequest)(nil), // 5: bannerpb.ListExperimentsRequest
	(*ExperimentInfo)(nil),         // 6: bannerpb.ExperimentInfo
	(*ListExperimentsReply)(nil),   // 7: bannerpb.ListExperimentsReply
}
var file_banner_proto_depIdxs = []int32{
	6, // 0: bannerpb.ListExperimentsReply.experiments:type_name -> bannerpb.ExperimentInfo
	0, // 1: bannerpb.BannerAnalysis.RecordBatch:input_type -> bannerpb.RecordBatchRequest
	2, // 2: bannerpb.BannerAnalysis.RunAnalysis:input_type -> bannerpb.RunAnalysisRequest
	4, // 3: bannerpb.BannerAnalysis.GetSummary:input_type -> bannerpb.GetSummaryRequest
	5, // 4: bannerpb.BannerAnalysis.ListExperiments:input_type -> bannerpb.ListExperimentsRequest
	1, // 5: bannerpb.BannerAnalysis.RecordBatch:output_type -> bannerpb.RecordBatchReply
	3, // 6: bannerpb.BannerAnalysis.RunAnalysis:output_type -> bannerpb.AnalysisReply
	3, // 7: bannerpb.BannerAnalysis.GetSummary:output_type -> bannerpb.AnalysisReply
	7, // 8: bannerpb.BannerAnalysis.ListExperiments:output_type -> bannerpb.ListExperimentsReply
	5, // [5:9] is the sub-list for method output_type
	1, // [1:5] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_banner_proto_init() }
func file_banner_proto_init() {
	if File_banner_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_banner_proto_rawDesc), len(file_banner_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_banner_proto_goTypes,
		DependencyIndexes: file_banner_proto_depIdxs,
		MessageInfos:      file_banner_proto_msgTypes,
	}.Build()
	File_banner_proto = out.File
	file_banner_proto_goTypes = nil
	file_banner_proto_depIdxs = nil
}
